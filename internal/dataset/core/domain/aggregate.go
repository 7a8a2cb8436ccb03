package domain

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "All"

// Statistics summarizes a numeric field over the rows where it parses
// to a finite number. Values are kept at full precision; rounding
// happens at the presentation boundary.
type Statistics struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	Std   float64 // population standard deviation
}

// FrequencyEntry is one group in a categorical frequency table.
type FrequencyEntry struct {
	Label string
	Count int
}

// FlagCount pairs a flag field's label with how many rows have it set.
type FlagCount struct {
	Label string
	Count int
}

// Bucket is a labeled inclusive numeric range.
type Bucket struct {
	Label string
	Min   float64
	Max   float64
}

// BucketCount is one bucket's aggregate: member count and, when an
// average field was requested, the running mean of that field.
type BucketCount struct {
	Label string
	Count int
	Avg   float64
}

// FilterRows keeps a row iff, for every filter with a constraining
// value, the row's value at that key stringifies equal to the filter
// value. Empty and "All" filter values are ignored. The result is an
// order-preserving subsequence of rows; with no active constraints the
// input is returned as-is.
func FilterRows(rows []Row, filters map[string]string) []Row {
	active := make(map[string]string, len(filters))
	for k, v := range filters {
		if v == "" || v == FilterAll {
			continue
		}
		active[k] = v
	}
	if len(active) == 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		keep := true
		for k, want := range active {
			if row.StringOf(k) != want {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// ComputeStatistics scans rows coercing row[field] to a number,
// discarding non-finite values. Returns nil when zero numeric values
// remain; "no data" is a result, not an error.
func ComputeStatistics(rows []Row, field string) *Statistics {
	nums := make([]float64, 0, len(rows))
	for _, row := range rows {
		if n, ok := row.NumberOf(field); ok {
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return nil
	}

	data := stats.Float64Data(nums)
	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	std, _ := stats.StandardDeviationPopulation(data)

	return &Statistics{
		Count: len(nums),
		Mean:  mean,
		Min:   min,
		Max:   max,
		Std:   std,
	}
}

// ComputeFrequency groups rows by the stringified value of field and
// counts occurrences. Missing and empty values are skipped. The result
// is sorted descending by count; ties keep the first-seen label order.
func ComputeFrequency(rows []Row, field string) []FrequencyEntry {
	counts := map[string]int{}
	order := map[string]int{}
	labels := []string{}

	for _, row := range rows {
		label := row.StringOf(field)
		if label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order[label] = len(labels)
			labels = append(labels, label)
		}
		counts[label]++
	}

	out := make([]FrequencyEntry, 0, len(labels))
	for _, label := range labels {
		out = append(out, FrequencyEntry{Label: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Label] < order[out[j].Label]
	})
	return out
}

// ComputeFlagCounts counts, for each named flag field, how many rows
// have that flag set. Output preserves the field order.
func ComputeFlagCounts(rows []Row, fields []FlagField) []FlagCount {
	out := make([]FlagCount, len(fields))
	for i, f := range fields {
		out[i] = FlagCount{Label: f.Label}
		for _, row := range rows {
			if row.FlagSet(f.Key) {
				out[i].Count++
			}
		}
	}
	return out
}

// BucketBy assigns each row with a finite numericField value to the
// first bucket whose inclusive range contains it; out-of-range values
// are dropped silently. When avgField is non-empty the bucket also
// accumulates that field's mean, and rows where avgField does not parse
// are skipped entirely.
func BucketBy(rows []Row, numericField string, buckets []Bucket, avgField string) []BucketCount {
	out := make([]BucketCount, len(buckets))
	sums := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = BucketCount{Label: b.Label}
	}

	for _, row := range rows {
		n, ok := row.NumberOf(numericField)
		if !ok {
			continue
		}

		var avg float64
		if avgField != "" {
			avg, ok = row.NumberOf(avgField)
			if !ok {
				continue
			}
		}

		for i, b := range buckets {
			if n >= b.Min && n <= b.Max {
				out[i].Count++
				sums[i] += avg
				break
			}
		}
	}

	for i := range out {
		if avgField != "" && out[i].Count > 0 {
			out[i].Avg = sums[i] / float64(out[i].Count)
		}
	}
	return out
}

// JoinByID merges each primary row with the first secondary row sharing
// its idField value. Unmatched primary rows pass through unchanged.
// Non-conflicting secondary keys (and keys the primary holds empty) are
// copied in; on a genuine value conflict the primary wins and the
// secondary's value is preserved under prefix+key.
func JoinByID(primary, secondary []Row, idField, prefix string) []Row {
	byID := make(map[string]Row, len(secondary))
	for _, row := range secondary {
		id := row.StringOf(idField)
		if id == "" {
			continue
		}
		if _, exists := byID[id]; !exists {
			byID[id] = row
		}
	}

	out := make([]Row, 0, len(primary))
	for _, p := range primary {
		sec, ok := byID[p.StringOf(idField)]
		if !ok {
			out = append(out, p)
			continue
		}
		out = append(out, mergeRows(p, sec, prefix))
	}
	return out
}

func mergeRows(primary, secondary Row, prefix string) Row {
	merged := make(Row, len(primary)+len(secondary))
	for k, v := range primary {
		merged[k] = v
	}
	for k, v := range secondary {
		cur, exists := merged[k]
		if !exists || cur == nil || cur == "" {
			merged[k] = v
			continue
		}
		if Stringify(cur) != Stringify(v) {
			merged[prefix+k] = v
		}
	}
	return merged
}
