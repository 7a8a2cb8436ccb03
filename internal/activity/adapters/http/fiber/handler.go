package fiber

import (
	"context"
	"net/http"
	"time"

	"gym-dashboard-service/internal/activity/core/domain"
	"gym-dashboard-service/internal/activity/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRecentLogsUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.LogEntry, error)
}

type ActivityHandler struct {
	recentUC GetRecentLogsUseCase
}

func NewActivityHandler(recentUC GetRecentLogsUseCase) *ActivityHandler {
	return &ActivityHandler{recentUC: recentUC}
}

// GetActivityLogs godoc
// @Summary Recent activity log entries
// @Description Returns the 50 most recent audit entries, newest first
// @Tags Activity
// @Produce json
// @Success 200 {array} ActivityLogResponse
// @Failure 500 {object} ErrorResponse
// @Router /activity-logs [get]
func (h *ActivityHandler) GetActivityLogs(c *fiber.Ctx) error {
	entries, err := h.recentUC.Execute(c.UserContext(), usecase.DefaultLogLimit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed_to_fetch_logs",
		})
	}

	resp := make([]ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ActivityLogResponse{
			ID:           e.ID,
			Username:     e.Username,
			Activity:     e.Activity,
			ActivityDate: e.Date.UTC().Format(time.RFC3339),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
