package handlers

import (
	"log"
	"time"

	"linkbio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves the owner dashboard's analytics report.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// RegisterRoutes registers the analytics route. Requires authentication.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/analytics", h.HandleGetAnalytics)
}

// parseDate accepts the date formats clients send: plain dates and full
// RFC3339 timestamps. dayOnly reports that the plain-date layout matched.
func parseDate(value string) (t time.Time, dayOnly, ok bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, true
	}
	return time.Time{}, false, false
}

// parseDateRange assembles the filteredSites bound from the query values.
// A plain end date is pushed to the last instant of its day so the whole
// day is included; an RFC3339 end bound is taken as-is, even at midnight.
// Both values must parse or no range applies.
func parseDateRange(startRaw, endRaw string) *services.DateRange {
	if startRaw == "" || endRaw == "" {
		return nil
	}
	start, _, okStart := parseDate(startRaw)
	end, endDayOnly, okEnd := parseDate(endRaw)
	if !okStart || !okEnd {
		return nil
	}
	if endDayOnly {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	return &services.DateRange{Start: start, End: end}
}

// HandleGetAnalytics computes the caller's analytics report. startDate and
// endDate restrict the filteredSites field only; both must be present and
// parseable for the filter to apply.
func (h *AnalyticsHandler) HandleGetAnalytics(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authenticated user",
		})
	}

	dateRange := parseDateRange(c.Query("startDate"), c.Query("endDate"))

	report, err := h.service.ComputeAnalytics(userID, dateRange)
	if err != nil {
		log.Printf("Error computing analytics for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute analytics",
			"error":   err.Error(),
		})
	}
	return c.JSON(report)
}
