package analytics

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucoview/api/internal/domain/assessment"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:patientId/trend", h.GetTrend)
	api.POST("/patients/:patientId/timeline", h.BuildTimeline)
	api.GET("/patients/:patientId/risk-factors", h.GetRiskFactors)
	api.GET("/patients/:patientId/comparison", h.GetComparison)
}

func (h *Handler) GetTrend(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	trend, err := h.svc.Trend(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, trend)
}

// timelineRequest carries the forecast series from an external trend
// service; history is loaded server-side.
type timelineRequest struct {
	Forecast []ForecastPoint `json:"forecast"`
}

func (h *Handler) BuildTimeline(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req timelineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	series, err := h.svc.Timeline(c.Request().Context(), patientID, req.Forecast)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, series)
}

func (h *Handler) GetRiskFactors(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	factors, err := h.svc.Factors(c.Request().Context(), patientID)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no assessments for patient")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, factors)
}

func (h *Handler) GetComparison(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	cmp, err := h.svc.Comparison(c.Request().Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, assessment.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "no assessments for patient")
		case errors.Is(err, ErrNoBaseline):
			return echo.NewHTTPError(http.StatusNotFound, "no matching cohort baseline")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, cmp)
}
