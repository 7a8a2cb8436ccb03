package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
	"gym-dashboard-service/internal/dataset/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// fetchTimeout bounds one CSV fetch + aggregation round trip.
const fetchTimeout = 15 * time.Second

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error)
}

type GetFlagCountsUseCase interface {
	Execute(ctx context.Context, in usecase.GetFlagCountsInput) (*usecase.FlagCountsResult, error)
}

type GetSleepByAgeUseCase interface {
	Execute(ctx context.Context) ([]domain.BucketCount, error)
}

type GetMemberProfileUseCase interface {
	Execute(ctx context.Context, memberID string) (domain.Row, error)
}

type DatasetHandler struct {
	registry  domain.Registry
	summaryUC GetSummaryUseCase
	flagsUC   GetFlagCountsUseCase
	sleepUC   GetSleepByAgeUseCase
	memberUC  GetMemberProfileUseCase
}

func NewDatasetHandler(
	registry domain.Registry,
	summaryUC GetSummaryUseCase,
	flagsUC GetFlagCountsUseCase,
	sleepUC GetSleepByAgeUseCase,
	memberUC GetMemberProfileUseCase,
) *DatasetHandler {
	return &DatasetHandler{
		registry:  registry,
		summaryUC: summaryUC,
		flagsUC:   flagsUC,
		sleepUC:   sleepUC,
		memberUC:  memberUC,
	}
}

// GetSummary godoc
// @Summary Dataset summary
// @Description Filtered row counts, descriptive statistics for a numeric field and frequency tables
// @Tags Datasets
// @Produce json
// @Param key path string true "Dataset key: gym | health"
// @Param field query string false "Numeric field to summarize"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /datasets/{key}/summary [get]
func (h *DatasetHandler) GetSummary(c *fiber.Ctx) error {
	key := c.Params("key")

	in := usecase.GetSummaryInput{
		DatasetKey: key,
		Field:      c.Query("field", ""),
		Filters:    h.collectFilters(c, key),
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	res, err := h.summaryUC.Execute(ctx, in)
	if err != nil {
		return datasetError(c, err)
	}

	resp := SummaryResponse{
		Dataset:      res.Dataset.Key,
		Name:         res.Dataset.Name,
		TotalRows:    res.TotalRows,
		FilteredRows: res.FilteredRows,
		Field:        res.Field,
		Frequencies:  make(map[string][]FrequencyEntry, len(res.Frequencies)),
	}
	if res.Statistics != nil {
		resp.Statistics = &StatisticsResponse{
			Count: res.Statistics.Count,
			Mean:  round2(res.Statistics.Mean),
			Min:   round2(res.Statistics.Min),
			Max:   round2(res.Statistics.Max),
			Std:   round2(res.Statistics.Std),
		}
	}
	for field, entries := range res.Frequencies {
		out := make([]FrequencyEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, FrequencyEntry{Label: e.Label, Count: e.Count})
		}
		resp.Frequencies[field] = out
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetClassPreferences godoc
// @Summary Group lesson preference counts
// @Tags Datasets
// @Produce json
// @Success 200 {object} FlagCountsResponse
// @Failure 502 {object} ErrorResponse
// @Router /datasets/gym/classes [get]
func (h *DatasetHandler) GetClassPreferences(c *fiber.Ctx) error {
	return h.flagCounts(c, usecase.GetFlagCountsInput{
		DatasetKey: domain.DatasetGym,
		Fields:     domain.GymClassFields(),
		Filters:    h.collectFilters(c, domain.DatasetGym),
	})
}

// GetDrinkPreferences godoc
// @Summary Favorite drink counts and subscriber total
// @Tags Datasets
// @Produce json
// @Success 200 {object} FlagCountsResponse
// @Failure 502 {object} ErrorResponse
// @Router /datasets/gym/drinks [get]
func (h *DatasetHandler) GetDrinkPreferences(c *fiber.Ctx) error {
	return h.flagCounts(c, usecase.GetFlagCountsInput{
		DatasetKey:       domain.DatasetGym,
		Fields:           domain.GymDrinkFields(),
		Filters:          h.collectFilters(c, domain.DatasetGym),
		CountSubscribers: true,
	})
}

func (h *DatasetHandler) flagCounts(c *fiber.Ctx, in usecase.GetFlagCountsInput) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	res, err := h.flagsUC.Execute(ctx, in)
	if err != nil {
		return datasetError(c, err)
	}

	resp := FlagCountsResponse{
		Dataset:      res.Dataset.Key,
		FilteredRows: res.FilteredRows,
		Counts:       make([]FlagEntry, 0, len(res.Counts)),
	}
	for _, fc := range res.Counts {
		resp.Counts = append(resp.Counts, FlagEntry{Label: fc.Label, Count: fc.Count})
	}
	if in.CountSubscribers {
		subs := res.Subscribers
		resp.Subscribers = &subs
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetSleepByAge godoc
// @Summary Average sleep hours per age range
// @Tags Datasets
// @Produce json
// @Success 200 {object} SleepByAgeResponse
// @Failure 502 {object} ErrorResponse
// @Router /datasets/health/sleep-by-age [get]
func (h *DatasetHandler) GetSleepByAge(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	buckets, err := h.sleepUC.Execute(ctx)
	if err != nil {
		return datasetError(c, err)
	}

	resp := SleepByAgeResponse{Buckets: make([]AgeBucketEntry, 0, len(buckets))}
	for _, b := range buckets {
		resp.Buckets = append(resp.Buckets, AgeBucketEntry{
			Label:    b.Label,
			Count:    b.Count,
			AvgSleep: round2(b.Avg),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetMemberProfile godoc
// @Summary Merged member profile
// @Description Gym membership row joined with the member's health row
// @Tags Members
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {object} MemberProfileResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /members/{id} [get]
func (h *DatasetHandler) GetMemberProfile(c *fiber.Ctx) error {
	id := c.Params("id")

	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	row, err := h.memberUC.Execute(ctx, id)
	if err != nil {
		return datasetError(c, err)
	}

	return c.Status(http.StatusOK).JSON(MemberProfileResponse{
		ID:     id,
		Fields: row,
	})
}

// collectFilters picks the dataset's declared filter fields out of the
// query string; anything else is ignored.
func (h *DatasetHandler) collectFilters(c *fiber.Ctx, key string) map[string]string {
	ds, ok := h.registry.Lookup(key)
	if !ok {
		return nil
	}

	filters := map[string]string{}
	for _, f := range ds.FilterFields {
		if v := c.Query(f, ""); v != "" {
			filters[f] = v
		}
	}
	return filters
}

func datasetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownDataset):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_dataset",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrMemberNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "member_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownField):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_field",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrFetch), errors.Is(err, ports.ErrParse):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "dataset_unavailable",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
