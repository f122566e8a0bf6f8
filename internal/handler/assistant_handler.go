package handler

import (
	"errors"
	"net/http"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/cafemine/mine-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the AI menu assistant endpoint.
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Recommend godoc
// POST /api/ai/recommend
// Answers a customer question grounded in the currently available menu.
func (h *AssistantHandler) Recommend(c *gin.Context) {
	var req model.AssistantRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reply, err := h.assistantService.Answer(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			response.Fail(c, http.StatusBadRequest, response.ErrEmptyMessage)
		case errors.Is(err, service.ErrAssistantNotConfigured):
			response.Fail(c, http.StatusInternalServerError, response.ErrAssistantNotConfigured)
		case errors.Is(err, service.ErrMenuEmpty):
			response.Fail(c, http.StatusInternalServerError, response.ErrMenuEmpty)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrAssistantFailed)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
