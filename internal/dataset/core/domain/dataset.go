package domain

import "math"

// MaxRowsPerDataset bounds how many rows a source may hand to the
// aggregator. Rows beyond the cap are dropped silently.
const MaxRowsPerDataset = 5000

const (
	DatasetGym    = "gym"
	DatasetHealth = "health"
)

// Dataset describes one CSV resource: where to fetch it and which
// columns are eligible for statistics and filtering.
type Dataset struct {
	Key           string
	Name          string
	URL           string
	NumericFields []string
	FilterFields  []string
}

// HasNumericField reports whether field is in the declared numeric list.
func (d Dataset) HasNumericField(field string) bool {
	for _, f := range d.NumericFields {
		if f == field {
			return true
		}
	}
	return false
}

// Registry resolves dataset keys to their specs.
type Registry struct {
	byKey map[string]Dataset
}

// NewRegistry builds the two known datasets with their declared field
// lists. The column names (including the misspelled abonoment_type
// variant) match the CSV headers as shipped.
func NewRegistry(gymURL, healthURL string) Registry {
	gym := Dataset{
		Key:           DatasetGym,
		Name:          "Gym Membership Dataset",
		URL:           gymURL,
		NumericFields: []string{"visit_per_week", "days_per_week", "avg_time_in_gym"},
		FilterFields:  []string{"gender", "abonement_type", "abonoment_type"},
	}
	health := Dataset{
		Key:           DatasetHealth,
		Name:          "FitLife Health & Fitness Dataset",
		URL:           healthURL,
		NumericFields: []string{"daily_steps", "calories_burned", "hours_sleep", "avg_heart_rate", "bmi"},
		FilterFields:  []string{"gender", "activity_type"},
	}

	return Registry{byKey: map[string]Dataset{
		gym.Key:    gym,
		health.Key: health,
	}}
}

// Lookup returns the dataset for key.
func (r Registry) Lookup(key string) (Dataset, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// FlagField pairs a boolean-like column with its display label.
type FlagField struct {
	Key   string
	Label string
}

// GymClassFields lists the group lesson preference columns in chart
// order.
func GymClassFields() []FlagField {
	return []FlagField{
		{Key: "Group_Lesson_Kickboxen", Label: "Kickboxen"},
		{Key: "Group_Lesson_BodyPump", Label: "BodyPump"},
		{Key: "Group_Lesson_Zumba", Label: "Zumba"},
		{Key: "Group_Lesson_XCore", Label: "XCore"},
		{Key: "Group_Lesson_Running", Label: "Running"},
		{Key: "Group_Lesson_Yoga", Label: "Yoga"},
		{Key: "Group_Lesson_LesMiles", Label: "LesMiles"},
		{Key: "Group_Lesson_Pilates", Label: "Pilates"},
		{Key: "Group_Lesson_HIT", Label: "HIT"},
		{Key: "Group_Lesson_Spinning", Label: "Spinning"},
		{Key: "Group_Lesson_BodyBalance", Label: "BodyBalance"},
	}
}

// GymDrinkFields lists the favorite drink preference columns in chart
// order.
func GymDrinkFields() []FlagField {
	return []FlagField{
		{Key: "fav_drink_berryboost", Label: "Berry Boost"},
		{Key: "fav_drink_lemon", Label: "Lemon"},
		{Key: "fav_drink_passion_fruit", Label: "Passion Fruit"},
		{Key: "fav_drink_coconut_pineapple", Label: "Coconut Pineapple"},
		{Key: "fav_drink_orange", Label: "Orange"},
		{Key: "fav_drink_black_currant", Label: "Black Currant"},
	}
}

// AgeBuckets returns the age ranges used for the sleep-by-age breakdown.
// Bounds are inclusive; the last bucket is open-ended.
func AgeBuckets() []Bucket {
	return []Bucket{
		{Label: "18–25", Min: 18, Max: 25},
		{Label: "26–35", Min: 26, Max: 35},
		{Label: "36–45", Min: 36, Max: 45},
		{Label: "46+", Min: 46, Max: math.Inf(1)},
	}
}
