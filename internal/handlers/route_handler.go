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

type RouteRequest struct {
	Source      uuid.UUID `json:"source" binding:"required"`
	Destination uuid.UUID `json:"destination" binding:"required"`
	Distance    int       `json:"distance"`
}

type RouteHandler struct {
	routes repository.RouteRepository
}

func NewRouteHandler(routes repository.RouteRepository) *RouteHandler {
	return &RouteHandler{routes: routes}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	routes := router.Group("/routes", middleware.Require(access.KindRoute))
	routes.GET("", h.list)
	routes.POST("", h.create)
}

func (h *RouteHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	source, err := helpers.ParseUUIDQuery(c, "source")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	destination, err := helpers.ParseUUIDQuery(c, "destination")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	filter := repository.RouteFilter{SourceID: source, DestinationID: destination}
	result, err := h.routes.List(c.Request.Context(), filter, page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	items := make([]RouteResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toRouteResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, helpers.PageResponse(items, result))
}

func (h *RouteHandler) create(c *gin.Context) {
	var req RouteRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	route := models.Route{SourceID: req.Source, DestinationID: req.Destination, Distance: req.Distance}
	if err := route.Validate(); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	if err := h.routes.Create(c.Request.Context(), &route); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRouteResponse(&route))
}
