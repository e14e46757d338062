package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/repository"
)

type VerifyBoardingPassRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

// BoardingPassHandler lets staff check a scanned boarding pass at the gate.
// Verification is read-only; tickets are never marked or modified.
type BoardingPassHandler struct {
	orders repository.OrderRepository
	signer *helpers.BoardingPassSigner
}

func NewBoardingPassHandler(orders repository.OrderRepository, signer *helpers.BoardingPassSigner) *BoardingPassHandler {
	return &BoardingPassHandler{orders: orders, signer: signer}
}

func (h *BoardingPassHandler) Register(router *gin.RouterGroup) {
	passes := router.Group("/boarding-passes", middleware.Require(access.KindBoardingPass))
	passes.POST("/verify", h.verify)
}

func (h *BoardingPassHandler) verify(c *gin.Context) {
	var req VerifyBoardingPassRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	ticketID, err := h.signer.TicketID(req.QRData)
	if err != nil {
		helpers.RespondWithAppError(c, apperror.Validation("qr_data", "Invalid boarding pass."))
		return
	}

	ticket, err := h.orders.FindTicket(c.Request.Context(), ticketID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"ticket": toTicketResponse(ticket),
	})
}
