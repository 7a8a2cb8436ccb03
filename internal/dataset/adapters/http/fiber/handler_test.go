package fiber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gym-dashboard-service/internal/dataset/core/domain"
	"gym-dashboard-service/internal/dataset/core/ports"
	"gym-dashboard-service/internal/dataset/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeSummaryUC struct {
	ExecuteFunc func(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error)
	LastInput   usecase.GetSummaryInput
}

func (f *fakeSummaryUC) Execute(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return nil, usecase.ErrUnknownDataset
}

type fakeFlagsUC struct {
	ExecuteFunc func(ctx context.Context, in usecase.GetFlagCountsInput) (*usecase.FlagCountsResult, error)
}

func (f *fakeFlagsUC) Execute(ctx context.Context, in usecase.GetFlagCountsInput) (*usecase.FlagCountsResult, error) {
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return &usecase.FlagCountsResult{}, nil
}

type fakeSleepUC struct {
	ExecuteFunc func(ctx context.Context) ([]domain.BucketCount, error)
}

func (f *fakeSleepUC) Execute(ctx context.Context) ([]domain.BucketCount, error) {
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx)
	}
	return nil, nil
}

type fakeMemberUC struct {
	ExecuteFunc func(ctx context.Context, memberID string) (domain.Row, error)
}

func (f *fakeMemberUC) Execute(ctx context.Context, memberID string) (domain.Row, error) {
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, memberID)
	}
	return nil, usecase.ErrMemberNotFound
}

func setupDatasetApp(summary *fakeSummaryUC, flags *fakeFlagsUC, sleep *fakeSleepUC, member *fakeMemberUC) *fiber.App {
	if summary == nil {
		summary = &fakeSummaryUC{}
	}
	if flags == nil {
		flags = &fakeFlagsUC{}
	}
	if sleep == nil {
		sleep = &fakeSleepUC{}
	}
	if member == nil {
		member = &fakeMemberUC{}
	}

	registry := domain.NewRegistry("http://example.test/gym.csv", "http://example.test/health.csv")
	h := NewDatasetHandler(registry, summary, flags, sleep, member)

	app := fiber.New()
	app.Get("/api/datasets/gym/classes", h.GetClassPreferences)
	app.Get("/api/datasets/gym/drinks", h.GetDrinkPreferences)
	app.Get("/api/datasets/health/sleep-by-age", h.GetSleepByAge)
	app.Get("/api/datasets/:key/summary", h.GetSummary)
	app.Get("/api/members/:id", h.GetMemberProfile)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, body
}

func TestGetSummary_Success_RoundsStatistics(t *testing.T) {
	summary := &fakeSummaryUC{
		ExecuteFunc: func(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error) {
			return &usecase.DatasetSummary{
				Dataset:      domain.Dataset{Key: domain.DatasetGym, Name: "Gym Membership Dataset"},
				TotalRows:    3,
				FilteredRows: 2,
				Field:        in.Field,
				Statistics:   &domain.Statistics{Count: 2, Mean: 3.33333, Min: 2, Max: 4.66666, Std: 1.11111},
				Frequencies: map[string][]domain.FrequencyEntry{
					"gender": {{Label: "Male", Count: 2}},
				},
			}, nil
		},
	}

	app := setupDatasetApp(summary, nil, nil, nil)

	resp, body := doGet(t, app, "/api/datasets/gym/summary?field=visit_per_week&gender=Male")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	if summary.LastInput.Filters["gender"] != "Male" {
		t.Errorf("declared filter field must be collected, got %v", summary.LastInput.Filters)
	}

	var respJSON SummaryResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Statistics == nil {
		t.Fatal("expected statistics in response")
	}
	if respJSON.Statistics.Mean != 3.33 || respJSON.Statistics.Max != 4.67 || respJSON.Statistics.Std != 1.11 {
		t.Errorf("expected two-decimal rounding, got %+v", respJSON.Statistics)
	}
}

func TestGetSummary_IgnoresUndeclaredFilterParams(t *testing.T) {
	summary := &fakeSummaryUC{
		ExecuteFunc: func(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error) {
			return &usecase.DatasetSummary{Dataset: domain.Dataset{Key: in.DatasetKey}}, nil
		},
	}

	app := setupDatasetApp(summary, nil, nil, nil)
	doGet(t, app, "/api/datasets/gym/summary?bogus=1&gender=Female")

	if _, exists := summary.LastInput.Filters["bogus"]; exists {
		t.Errorf("undeclared query param must not become a filter: %v", summary.LastInput.Filters)
	}
	if summary.LastInput.Filters["gender"] != "Female" {
		t.Errorf("declared filter missing: %v", summary.LastInput.Filters)
	}
}

func TestGetSummary_UnknownDatasetIs404(t *testing.T) {
	app := setupDatasetApp(nil, nil, nil, nil)

	resp, _ := doGet(t, app, "/api/datasets/trainers/summary")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSummary_InvalidFieldIs400(t *testing.T) {
	summary := &fakeSummaryUC{
		ExecuteFunc: func(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error) {
			return nil, usecase.ErrUnknownField
		},
	}

	app := setupDatasetApp(summary, nil, nil, nil)

	resp, _ := doGet(t, app, "/api/datasets/gym/summary?field=gender")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetSummary_FetchFailureIs502(t *testing.T) {
	summary := &fakeSummaryUC{
		ExecuteFunc: func(ctx context.Context, in usecase.GetSummaryInput) (*usecase.DatasetSummary, error) {
			return nil, fmt.Errorf("%w: connection refused", ports.ErrFetch)
		},
	}

	app := setupDatasetApp(summary, nil, nil, nil)

	resp, body := doGet(t, app, "/api/datasets/gym/summary")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d (body: %s)", resp.StatusCode, string(body))
	}
}

func TestGetDrinkPreferences_IncludesSubscribers(t *testing.T) {
	flags := &fakeFlagsUC{
		ExecuteFunc: func(ctx context.Context, in usecase.GetFlagCountsInput) (*usecase.FlagCountsResult, error) {
			if !in.CountSubscribers {
				t.Fatal("drinks endpoint must request subscriber count")
			}
			return &usecase.FlagCountsResult{
				Dataset:      domain.Dataset{Key: domain.DatasetGym},
				FilteredRows: 10,
				Counts:       []domain.FlagCount{{Label: "Lemon", Count: 4}},
				Subscribers:  6,
			}, nil
		},
	}

	app := setupDatasetApp(nil, flags, nil, nil)

	resp, body := doGet(t, app, "/api/datasets/gym/drinks")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var respJSON FlagCountsResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Subscribers == nil || *respJSON.Subscribers != 6 {
		t.Fatalf("expected subscribers=6, got %v", respJSON.Subscribers)
	}
}

func TestGetMemberProfile_NotFoundIs404(t *testing.T) {
	app := setupDatasetApp(nil, nil, nil, nil)

	resp, _ := doGet(t, app, "/api/members/99")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSleepByAge_Success(t *testing.T) {
	sleep := &fakeSleepUC{
		ExecuteFunc: func(ctx context.Context) ([]domain.BucketCount, error) {
			return []domain.BucketCount{
				{Label: "18–25", Count: 2, Avg: 7.2625},
			}, nil
		},
	}

	app := setupDatasetApp(nil, nil, sleep, nil)

	resp, body := doGet(t, app, "/api/datasets/health/sleep-by-age")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var respJSON SleepByAgeResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	// 7.2625 rounds to 7.26 for display
	if len(respJSON.Buckets) != 1 || respJSON.Buckets[0].AvgSleep != 7.26 {
		t.Fatalf("unexpected buckets: %+v", respJSON.Buckets)
	}
}
