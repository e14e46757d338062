package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type FlightRequest struct {
	Route         uuid.UUID   `json:"route" binding:"required"`
	Airplane      uuid.UUID   `json:"airplane" binding:"required"`
	Crew          []uuid.UUID `json:"crew"`
	DepartureTime time.Time   `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time   `json:"arrival_time" binding:"required"`
}

type PatchFlightRequest struct {
	Route         *uuid.UUID   `json:"route"`
	Airplane      *uuid.UUID   `json:"airplane"`
	Crew          *[]uuid.UUID `json:"crew"`
	DepartureTime *time.Time   `json:"departure_time"`
	ArrivalTime   *time.Time   `json:"arrival_time"`
}

type FlightHandler struct {
	flights repository.FlightRepository
	crews   repository.CrewRepository
}

func NewFlightHandler(flights repository.FlightRepository, crews repository.CrewRepository) *FlightHandler {
	return &FlightHandler{flights: flights, crews: crews}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	flights := router.Group("/flights", middleware.Require(access.KindFlight))
	flights.GET("", h.list)
	flights.POST("", h.create)
	flights.GET("/:id", h.get)
	flights.PUT("/:id", h.update)
	flights.PATCH("/:id", h.patch)
	flights.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	filter, err := parseFlightFilter(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	result, err := h.flights.List(c.Request.Context(), filter, page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	items := make([]FlightListItem, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toFlightListItem(&result.Items[i]))
	}
	c.JSON(http.StatusOK, helpers.PageResponse(items, result))
}

func parseFlightFilter(c *gin.Context) (repository.FlightFilter, error) {
	var filter repository.FlightFilter
	var err error

	if filter.RouteID, err = helpers.ParseUUIDQuery(c, "route"); err != nil {
		return filter, err
	}
	if filter.AirplaneID, err = helpers.ParseUUIDQuery(c, "airplane"); err != nil {
		return filter, err
	}
	if filter.Date, err = helpers.ParseDateQuery(c, "date"); err != nil {
		return filter, err
	}
	if filter.CrewIDs, err = helpers.ParseUUIDList(c, "crew"); err != nil {
		return filter, err
	}
	return filter, nil
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "flight")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	flight, err := h.flights.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFlightDetail(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req FlightRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	flight := &models.Flight{
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if err := h.save(c.Request.Context(), flight, req.Crew, h.flights.Create); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	var req FlightRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	h.apply(c, PatchFlightRequest{
		Route:         &req.Route,
		Airplane:      &req.Airplane,
		Crew:          &req.Crew,
		DepartureTime: &req.DepartureTime,
		ArrivalTime:   &req.ArrivalTime,
	})
}

func (h *FlightHandler) patch(c *gin.Context) {
	var req PatchFlightRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	h.apply(c, req)
}

func (h *FlightHandler) apply(c *gin.Context, req PatchFlightRequest) {
	ctx := c.Request.Context()
	id, err := helpers.ParseUUIDParam(c, "id", "flight")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	flight, err := h.flights.Get(ctx, id)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if req.Route != nil {
		flight.RouteID = *req.Route
	}
	if req.Airplane != nil {
		flight.AirplaneID = *req.Airplane
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}

	crewIDs := make([]uuid.UUID, 0, len(flight.Crew))
	for _, member := range flight.Crew {
		crewIDs = append(crewIDs, member.ID)
	}
	if req.Crew != nil {
		crewIDs = *req.Crew
	}

	if err := h.save(ctx, flight, crewIDs, h.flights.Update); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFlightResponse(flight))
}

// save validates the flight, resolves its crew and hands it to persist.
func (h *FlightHandler) save(ctx context.Context, flight *models.Flight, crewIDs []uuid.UUID, persist func(context.Context, *models.Flight) error) error {
	if err := flight.Validate(); err != nil {
		return err
	}

	crew, err := h.crews.FindByIDs(ctx, uniqueIDs(crewIDs))
	if err != nil {
		return err
	}
	flight.Crew = crew

	return persist(ctx, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "flight")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if err := h.flights.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
