package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type CrewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type CrewHandler struct {
	crews repository.CrewRepository
}

func NewCrewHandler(crews repository.CrewRepository) *CrewHandler {
	return &CrewHandler{crews: crews}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	crews := router.Group("/crews", middleware.Require(access.KindCrew))
	crews.GET("", h.list)
	crews.POST("", h.create)
}

func (h *CrewHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	result, err := h.crews.List(c.Request.Context(), page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	items := make([]CrewResponse, 0, len(result.Items))
	for _, member := range result.Items {
		items = append(items, toCrewResponse(member))
	}
	c.JSON(http.StatusOK, helpers.PageResponse(items, result))
}

func (h *CrewHandler) create(c *gin.Context) {
	var req CrewRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	crew := models.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := crew.Validate(); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if err := h.crews.Create(c.Request.Context(), &crew); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCrewResponse(crew))
}
