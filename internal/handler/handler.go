package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"perfmeter/internal/domain"
	"perfmeter/internal/registry"
	"perfmeter/internal/service"
	"perfmeter/internal/validation"
)

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errClassRequired     = map[string]string{"error": "class name is required"}
	errClassTooLong      = map[string]string{"error": "class name exceeds maximum length"}
	errInvalidClass      = map[string]string{"error": "invalid class name"}
	errClassNotFound     = map[string]string{"error": "class not found"}
	errCallNotFound      = map[string]string{"error": "call not found"}
	errRetentionRange    = map[string]string{"error": "retention minutes out of range"}
	errKeyRequired       = map[string]string{"error": "key is required"}
	errKeyTooLong        = map[string]string{"error": "key exceeds maximum length"}
	errInvalidValue      = map[string]string{"error": "value must be valid json"}
	errValueTooLarge     = map[string]string{"error": "value exceeds maximum size"}
	errReportFailed      = map[string]string{"error": "failed to build report"}
	errUpdateFailed      = map[string]string{"error": "failed to update class"}
	respHealthOK         = map[string]string{"status": "ok"}
	respResetOK          = map[string]string{"status": "reset"}
	respCustomDataStored = map[string]string{"status": "stored"}
)

type Handler struct {
	reports   ReportService
	validator ReportValidator
	logger    *slog.Logger
}

func New(reports ReportService, validator ReportValidator, logger *slog.Logger) *Handler {
	return &Handler{
		reports:   reports,
		validator: validator,
		logger:    logger,
	}
}

// Register mounts the reporting API. Class names contain slashes, so clients
// send them path-escaped (%2F).
func (h *Handler) Register(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	perf := api.Group("/performance", mw...)
	perf.GET("", h.ListClasses)
	perf.GET("/:class", h.Report)
	perf.GET("/:class/calls/:id", h.Call)
	perf.POST("/:class/reset", h.Reset)
	perf.PUT("/:class/retention", h.SetRetention)
	perf.PUT("/:class/custom-data", h.AddCustomData)
	perf.DELETE("/:class/custom-data", h.RemoveCustomData)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) ListClasses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reports.ListClasses())
}

func (h *Handler) Report(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	body, err := h.reports.Report(className)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			return c.JSON(http.StatusNotFound, errClassNotFound)
		}
		h.logger.Error("failed to build report",
			slog.String("class", className),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errReportFailed)
	}

	return c.JSONBlob(http.StatusOK, body)
}

func (h *Handler) Call(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	call, err := h.reports.Call(className, c.Param("id"))
	if err != nil {
		return h.handleServiceError(c, className, err)
	}

	return c.JSON(http.StatusOK, call)
}

func (h *Handler) Reset(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.reports.Reset(className); err != nil {
		return h.handleServiceError(c, className, err)
	}

	return c.JSON(http.StatusOK, respResetOK)
}

func (h *Handler) SetRetention(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req domain.RetentionRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateRetention(req.Minutes); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.reports.SetRetention(className, req.Minutes)
	if err != nil {
		return h.handleServiceError(c, className, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddCustomData(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req domain.CustomDataRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateCustomData(req.Key, req.Value); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.reports.AddCustomData(className, req.Key, req.Value); err != nil {
		return h.handleServiceError(c, className, err)
	}

	return c.JSON(http.StatusOK, respCustomDataStored)
}

func (h *Handler) RemoveCustomData(c echo.Context) error {
	className, err := h.classParam(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	key := c.QueryParam("key")
	if err := h.validator.ValidateCustomDataKey(key); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.reports.RemoveCustomData(className, key); err != nil {
		return h.handleServiceError(c, className, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) classParam(c echo.Context) (string, error) {
	className, err := unescapeClass(c.Param("class"))
	if err != nil {
		return "", err
	}
	if err := h.validator.ValidateClassName(className); err != nil {
		return "", err
	}
	return className, nil
}

// unescapeClass accepts both raw and already-decoded parameters; class names
// never contain '%'.
func unescapeClass(param string) (string, error) {
	className, err := url.PathUnescape(param)
	if err != nil {
		return "", validation.ErrInvalidClassName
	}
	return className, nil
}

func (h *Handler) handleServiceError(c echo.Context, className string, err error) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		return c.JSON(http.StatusNotFound, errClassNotFound)
	case errors.Is(err, service.ErrCallNotFound):
		return c.JSON(http.StatusNotFound, errCallNotFound)
	case errors.Is(err, registry.ErrInvalidRetention):
		return c.JSON(http.StatusBadRequest, errRetentionRange)
	default:
		h.logger.Error("failed to update class",
			slog.String("class", className),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errUpdateFailed)
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyClassName):
		return c.JSON(http.StatusBadRequest, errClassRequired)
	case errors.Is(err, validation.ErrClassNameTooLong):
		return c.JSON(http.StatusBadRequest, errClassTooLong)
	case errors.Is(err, validation.ErrInvalidClassName):
		return c.JSON(http.StatusBadRequest, errInvalidClass)
	case errors.Is(err, validation.ErrRetentionOutOfRange):
		return c.JSON(http.StatusBadRequest, errRetentionRange)
	case errors.Is(err, validation.ErrEmptyKey):
		return c.JSON(http.StatusBadRequest, errKeyRequired)
	case errors.Is(err, validation.ErrKeyTooLong):
		return c.JSON(http.StatusBadRequest, errKeyTooLong)
	case errors.Is(err, validation.ErrInvalidValue):
		return c.JSON(http.StatusBadRequest, errInvalidValue)
	case errors.Is(err, validation.ErrValueTooLarge):
		return c.JSON(http.StatusBadRequest, errValueTooLarge)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
