package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafemine/mine-backend/internal/middleware"
	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/cafemine/mine-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// MenuHandler handles menu item endpoints.
type MenuHandler struct {
	catalogService *service.CatalogService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(catalogService *service.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// ListMenu godoc
// GET /api/menu
// Returns categories with nested items and price options, creation-ordered at
// every level. Unavailable items appear only for a resolved admin identity.
func (h *MenuHandler) ListMenu(c *gin.Context) {
	includeUnavailable := middleware.GetClaims(c) != nil

	menu, err := h.catalogService.ListMenu(c.Request.Context(), includeUnavailable)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": menu})
}

// CreateItem godoc
// POST /api/menu
// Creates a menu item with at least one price option. The category reference
// is categoryId XOR categoryName; supplying both fails before any storage call.
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req model.CreateMenuItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if req.HasAmbiguousCategory() {
		response.Fail(c, http.StatusBadRequest, response.ErrAmbiguousCategory)
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.failItemMutation(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem godoc
// PUT /api/menu/:id
// Partially updates an item. A supplied priceOptions list replaces the whole
// option set; an empty list leaves zero options.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateMenuItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if req.HasAmbiguousCategory() {
		response.Fail(c, http.StatusBadRequest, response.ErrAmbiguousCategory)
		return
	}
	if req.CategoryID.Set && req.CategoryID.Valid && req.CategoryID.Value <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		h.failItemMutation(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem godoc
// DELETE /api/menu/:id
// Deletes an item; its price options cascade.
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MenuHandler) failItemMutation(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrCategoryNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		response.Fail(c, http.StatusConflict, response.ErrCategoryExists)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
