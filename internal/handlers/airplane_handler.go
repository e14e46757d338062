package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type AirplaneRequest struct {
	Name         string    `json:"name" binding:"required"`
	Rows         int       `json:"rows"`
	SeatsInRow   int       `json:"seats_in_row"`
	AirplaneType uuid.UUID `json:"airplane_type" binding:"required"`
}

type AirplaneHandler struct {
	airplanes repository.AirplaneRepository
}

func NewAirplaneHandler(airplanes repository.AirplaneRepository) *AirplaneHandler {
	return &AirplaneHandler{airplanes: airplanes}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	airplanes := router.Group("/airplanes", middleware.Require(access.KindAirplane))
	airplanes.GET("", h.list)
	airplanes.POST("", h.create)
	airplanes.GET("/:id", h.get)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	airplaneType, err := helpers.ParseUUIDQuery(c, "airplane_type")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	filter := repository.AirplaneFilter{
		AirplaneTypeID: airplaneType,
		Name:           c.Query("airplane_name"),
	}
	result, err := h.airplanes.List(c.Request.Context(), filter, page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	items := make([]AirplaneResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAirplaneResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, helpers.PageResponse(items, result))
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "airplane")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplane, err := h.airplanes.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAirplaneResponse(airplane))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req AirplaneRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	airplane := models.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	}
	if err := airplane.Validate(); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if err := h.airplanes.Create(c.Request.Context(), &airplane); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAirplaneResponse(&airplane))
}
