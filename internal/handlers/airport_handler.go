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

type AirportRequest struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
}

type AirportHandler struct {
	airports repository.AirportRepository
	store    storage.BlobStore
}

func NewAirportHandler(airports repository.AirportRepository, store storage.BlobStore) *AirportHandler {
	return &AirportHandler{airports: airports, store: store}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	airports := router.Group("/airports", middleware.Require(access.KindAirport))
	airports.GET("", h.list)
	airports.POST("", h.create)
	airports.POST("/:id/upload-image", middleware.Require(access.KindImageAttach), h.uploadImage)
}

func (h *AirportHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	result, err := h.airports.List(c.Request.Context(), page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, helpers.PageResponse(result.Items, result))
}

func (h *AirportHandler) create(c *gin.Context) {
	var req AirportRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airport := models.Airport{Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := airport.Validate(); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if err := h.airports.Create(c.Request.Context(), &airport); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) uploadImage(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "airport")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airport, err := h.airports.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	url, err := helpers.UploadFile(c, h.store, "airports", airport.Name)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airport, err = h.airports.SetImage(c.Request.Context(), id, url)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": airport.ID, "image": airport.Image})
}
