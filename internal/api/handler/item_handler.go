package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// ItemHandler handles HTTP requests for catalog operations.
type ItemHandler struct {
	catalog ports.CatalogService
}

func NewItemHandler(catalog ports.CatalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// Create handles POST /v1/items.
//
// @Summary      Create a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  itemEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.catalog.CreateItem(c.Request().Context(), ports.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: *req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(item.Category).Inc()
	return c.JSON(http.StatusCreated, itemEnvelope{
		Message: "item created successfully",
		Item:    toItemResponse(item),
	})
}

// List handles GET /v1/items.
//
// @Summary      List all catalog items, newest first
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listItemsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.catalog.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemList(items))
}

// Search handles GET /v1/items/search.
//
// @Summary      Search the catalog
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Case-insensitive name substring"
// @Param        category  query     string  false  "Case-insensitive category substring"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {object}  listItemsResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/items/search [get]
func (h *ItemHandler) Search(c echo.Context) error {
	input := ports.SearchItemsInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number")
		}
		input.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
		}
		input.MaxPrice = &v
	}

	items, err := h.catalog.SearchItems(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemList(items))
}

// Get handles GET /v1/items/:id.
//
// @Summary      Get a single catalog item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  itemEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.catalog.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemEnvelope{Item: toItemResponse(item)})
}

// Update handles PUT /v1/items/:id.
//
// @Summary      Update a catalog item (partial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "Fields to update"
// @Success      200   {object}  itemEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.catalog.UpdateItem(c.Request().Context(), c.Param("id"), ports.UpdateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, itemEnvelope{
		Message: "item updated successfully",
		Item:    toItemResponse(item),
	})
}

// Delete handles DELETE /v1/items/:id.
//
// @Summary      Delete a catalog item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "item deleted successfully"})
}

// Movements handles GET /v1/items/:id/movements.
//
// @Summary      List the stock movement audit trail for an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  listMovementsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id}/movements [get]
func (h *ItemHandler) Movements(c echo.Context) error {
	movements, err := h.catalog.ListMovements(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovementList(movements))
}
