package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// StockHandler exposes the stock ledger operations over HTTP.
type StockHandler struct {
	ledger ports.StockService
}

func NewStockHandler(ledger ports.StockService) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// Purchase handles POST /v1/items/:id/purchase.
//
// @Summary      Purchase an item (atomic stock decrement)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string              true   "Item id"
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate purchases"
// @Param        body             body      adjustStockRequest  true   "Purchase quantity"
// @Success      200              {object}  itemEnvelope
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/items/{id}/purchase [post]
func (h *StockHandler) Purchase(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	start := time.Now()
	item, err := h.ledger.Purchase(c.Request().Context(), ports.AdjustStockInput{
		ItemID:         c.Param("id"),
		Amount:         req.Quantity,
		Actor:          userID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	metrics.StockAdjustDuration.WithLabelValues("purchase").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(purchaseResult(err)).Inc()
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, itemEnvelope{
		Message: "purchase successful",
		Item:    toItemResponse(item),
	})
}

// Restock handles POST /v1/items/:id/restock.
//
// @Summary      Restock an item (atomic stock increment)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Item id"
// @Param        body  body      adjustStockRequest  true  "Restock quantity"
// @Success      200   {object}  itemEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/items/{id}/restock [post]
func (h *StockHandler) Restock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	start := time.Now()
	item, err := h.ledger.Restock(c.Request().Context(), ports.AdjustStockInput{
		ItemID: c.Param("id"),
		Amount: req.Quantity,
		Actor:  userID,
	})
	metrics.StockAdjustDuration.WithLabelValues("restock").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RestocksTotal.WithLabelValues(restockResult(err)).Inc()
		return err
	}

	metrics.RestocksTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, itemEnvelope{
		Message: "restock successful",
		Item:    toItemResponse(item),
	})
}

func purchaseResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrItemNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrDuplicatePurchase):
		return "duplicate"
	default:
		return "error"
	}
}

func restockResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "error"
	}
}
