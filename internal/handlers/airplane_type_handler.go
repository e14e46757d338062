package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
	"github.com/farellandr/airport-service/internal/storage"
)

type AirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type AirplaneTypeHandler struct {
	airplaneTypes repository.AirplaneTypeRepository
	store         storage.BlobStore
}

func NewAirplaneTypeHandler(airplaneTypes repository.AirplaneTypeRepository, store storage.BlobStore) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{airplaneTypes: airplaneTypes, store: store}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup) {
	airplaneTypes := router.Group("/airplane-types", middleware.Require(access.KindAirplaneType))
	airplaneTypes.GET("", h.list)
	airplaneTypes.POST("", h.create)
	airplaneTypes.GET("/:id", h.get)
	airplaneTypes.POST("/:id/upload-image", middleware.Require(access.KindImageAttach), h.uploadImage)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	result, err := h.airplaneTypes.List(c.Request.Context(), page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.PageResponse(result.Items, result))
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "airplane type")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplaneType, err := h.airplaneTypes.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, airplaneType)
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req AirplaneTypeRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplaneType := models.AirplaneType{Name: req.Name}
	if err := airplaneType.Validate(); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if err := h.airplaneTypes.Create(c.Request.Context(), &airplaneType); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airplaneType)
}

func (h *AirplaneTypeHandler) uploadImage(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "airplane type")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplaneType, err := h.airplaneTypes.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	url, err := helpers.UploadFile(c, h.store, "airplane-types", airplaneType.Name)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplaneType, err = h.airplaneTypes.SetImage(c.Request.Context(), id, url)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": airplaneType.ID, "image": airplaneType.Image})
}
