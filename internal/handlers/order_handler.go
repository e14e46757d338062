package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/repository"
	"github.com/farellandr/airport-service/internal/service/booking"
)

type CreateOrderRequest struct {
	Tickets []booking.TicketRequest `json:"tickets" binding:"dive"`
}

type OrderHandler struct {
	booking booking.UseCase
	orders  repository.OrderRepository
	signer  *helpers.BoardingPassSigner
}

func NewOrderHandler(useCase booking.UseCase, orders repository.OrderRepository, signer *helpers.BoardingPassSigner) *OrderHandler {
	return &OrderHandler{booking: useCase, orders: orders, signer: signer}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	orders := router.Group("/orders", middleware.Require(access.KindOrder))
	orders.GET("", h.list)
	orders.POST("", h.create)
	orders.GET("/:id/tickets/:ticket_id/boarding-pass", h.boardingPass)
}

// list only ever returns the caller's own orders, staff included.
func (h *OrderHandler) list(c *gin.Context) {
	page, err := helpers.ParsePage(c)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	owner := access.OrderOwner(middleware.GetPrincipal(c))
	result, err := h.orders.ListByOwner(c.Request.Context(), owner, page)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	items := make([]OrderResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toOrderResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, helpers.PageResponse(items, result))
}

func (h *OrderHandler) create(c *gin.Context) {
	var req CreateOrderRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	order, err := h.booking.CreateOrder(c.Request.Context(), middleware.GetPrincipal(c), req.Tickets)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) boardingPass(c *gin.Context) {
	orderID, err := helpers.ParseUUIDParam(c, "id", "order")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	ticketID, err := helpers.ParseUUIDParam(c, "ticket_id", "ticket")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	owner := access.OrderOwner(middleware.GetPrincipal(c))
	ticket, err := h.orders.GetTicket(c.Request.Context(), owner, orderID, ticketID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	png, err := h.signer.QRCode(ticket)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
