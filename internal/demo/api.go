package demo

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errUnknownSKU      = map[string]string{"error": "unknown sku"}
	errOutOfStock      = map[string]string{"error": "not enough stock"}
	errInvalidQuantity = map[string]string{"error": "quantity must be positive"}
	errInternal        = map[string]string{"error": "internal server error"}
)

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// API exposes an Inventory over HTTP so that route watching has traffic to
// record.
type API struct {
	inv    *Inventory
	logger *slog.Logger
}

func NewAPI(inv *Inventory, logger *slog.Logger) *API {
	return &API{inv: inv, logger: logger}
}

func (a *API) Register(e *echo.Echo) {
	g := e.Group("/api/v1/inventory")
	g.GET("", a.List)
	g.GET("/:sku", a.Lookup)
	g.POST("/:sku/reserve", a.Reserve)
	g.POST("/:sku/restock", a.Restock)
}

func (a *API) List(c echo.Context) error {
	return c.JSON(http.StatusOK, a.inv.Items())
}

func (a *API) Lookup(c echo.Context) error {
	item, err := a.inv.Lookup(c.Param("sku"))
	if err != nil {
		return a.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (a *API) Reserve(c echo.Context) error {
	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	reservation, err := a.inv.Reserve(c.Param("sku"), req.Quantity)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (a *API) Restock(c echo.Context) error {
	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	item, err := a.inv.Restock(c.Param("sku"), req.Quantity)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (a *API) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrUnknownSKU):
		return c.JSON(http.StatusNotFound, errUnknownSKU)
	case errors.Is(err, ErrOutOfStock):
		return c.JSON(http.StatusConflict, errOutOfStock)
	case errors.Is(err, ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, errInvalidQuantity)
	default:
		a.logger.Error("inventory request failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
}
