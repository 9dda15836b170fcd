package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucoview/api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:patientId/assessments", h.SubmitAssessment)
	api.GET("/patients/:patientId/assessments", h.ListAssessments)
	api.GET("/patients/:patientId/predictions", h.ListPredictions)
	api.GET("/assessments/:id", h.GetAssessment)
	api.DELETE("/assessments/:id", h.DeleteAssessment)
}

// validationBody is the 422 payload: all field errors at once plus the
// field the client should focus first.
type validationBody struct {
	Errors     ValidationErrors `json:"errors"`
	FocusField string           `json:"focusField"`
}

// fieldErrorBody is the 409 payload for database constraint violations.
type fieldErrorBody struct {
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) SubmitAssessment(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Submit(c.Request().Context(), patientID, &in)
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusUnprocessableEntity, validationBody{
				Errors:     verrs,
				FocusField: verrs.FirstInvalidField(),
			})
		}
		var ferr *FieldError
		if errors.As(err, &ferr) {
			return c.JSON(http.StatusConflict, fieldErrorBody{Code: ferr.Code, Field: ferr.Field})
		}
		if errors.Is(err, ErrPredictionFailed) {
			return echo.NewHTTPError(http.StatusBadGateway, "prediction service unavailable")
		}
		if errors.Is(err, ErrPredictionNotSaved) {
			// The record exists; report partial success so the client
			// does not resubmit blindly.
			return c.JSON(http.StatusAccepted, map[string]interface{}{
				"record": result.Record,
				"code":   "prediction_not_saved",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	result, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListPredictions(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.Predictions(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
