package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wugeer/almanac/internal/calendar"
	"github.com/wugeer/almanac/internal/config"
	"github.com/wugeer/almanac/internal/feed"
)

// maxRangeDays caps range queries at roughly one quarter.
const maxRangeDays = 93

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/day/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, calendar.BuildDay(time.Now()))
}

// GetDay handles GET /api/v1/day/{YYYY-MM-DD}
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, calendar.BuildDay(date))
}

// GetRange handles GET /api/v1/day/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	end, err := calendar.ParseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if int(end.Sub(start).Hours()/24)+1 > maxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range too large, maximum is %d days", maxRangeDays))
		return
	}

	var days []calendar.Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, calendar.BuildDay(d))
	}

	WriteSuccess(w, map[string]interface{}{
		"start": calendar.FormatDate(start),
		"end":   calendar.FormatDate(end),
		"count": len(days),
		"days":  days,
	})
}

// GetMonth handles GET /api/v1/month/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Invalid year")
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		WriteBadRequest(w, "Invalid month, expected 1-12")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"month": month,
		"weeks": calendar.MonthGrid(year, time.Month(month)),
	})
}

// GetHolidays handles GET /api/v1/holidays/{year}
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Invalid year")
		return
	}

	observances := calendar.HolidaysInYear(year)

	WriteSuccess(w, map[string]interface{}{
		"year":     year,
		"count":    len(observances),
		"holidays": observances,
	})
}

// GetCalendarFeed handles GET /api/v1/calendar/{year}.ics
func (h *Handlers) GetCalendarFeed(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Invalid year")
		return
	}

	data, err := feed.Year(year)
	if err != nil {
		h.logger.Error("failed to build calendar feed",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteNotFound(w, fmt.Sprintf("No calendar data for year %d", year))
		return
	}

	WriteCalendar(w, fmt.Sprintf("almanac-%d.ics", year), data)
}

// GetMeta handles GET /api/v1/meta
func (h *Handlers) GetMeta(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]interface{}{
		"lunar_min_year":      calendar.MinYear,
		"lunar_max_year":      calendar.MaxSupportedYear(),
		"solar_term_min_year": calendar.SolarTermMinYear,
		"solar_term_max_year": calendar.SolarTermMaxYear,
		"environment":         h.cfg.Env,
	})
}
