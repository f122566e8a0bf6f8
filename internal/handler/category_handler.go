package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/cafemine/mine-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	catalogService *service.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalogService *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// ListCategories godoc
// GET /api/categories
// Lists all categories with item counts, in creation order. Public.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory godoc
// POST /api/categories
// Creates a category. A duplicate name yields 409.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrCategoryExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteCategory godoc
// DELETE /api/categories/:id
// Deletes a category. A category that still owns items yields 409 and both
// the category and its items stay intact.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryHasItems):
			response.Fail(c, http.StatusConflict, response.ErrCategoryHasItems)
		case errors.Is(err, service.ErrCategoryNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
