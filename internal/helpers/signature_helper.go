package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/farellandr/airport-service/internal/models"
)

const signatureMarker = ";signature:"

// BoardingPassSigner renders signed QR codes for sold tickets.
type BoardingPassSigner struct {
	secretKey []byte
}

func NewBoardingPassSigner(secretKey string) *BoardingPassSigner {
	return &BoardingPassSigner{secretKey: []byte(secretKey)}
}

func (s *BoardingPassSigner) Payload(ticket *models.Ticket) string {
	data := fmt.Sprintf("ticket:%s;flight:%s;row:%d;seat:%d", ticket.ID, ticket.FlightID, ticket.Row, ticket.Seat)
	return data + signatureMarker + s.generateSignature(data)
}

func (s *BoardingPassSigner) Verify(payload string) bool {
	i := strings.LastIndex(payload, signatureMarker)
	if i < 0 {
		return false
	}
	data, signature := payload[:i], payload[i+len(signatureMarker):]
	return hmac.Equal([]byte(signature), []byte(s.generateSignature(data)))
}

// TicketID extracts the ticket id from a payload whose signature checks out.
func (s *BoardingPassSigner) TicketID(payload string) (uuid.UUID, error) {
	if !s.Verify(payload) {
		return uuid.Nil, fmt.Errorf("invalid boarding pass signature")
	}
	head, _, _ := strings.Cut(payload, ";")
	if !strings.HasPrefix(head, "ticket:") {
		return uuid.Nil, fmt.Errorf("invalid boarding pass format")
	}
	return uuid.Parse(strings.TrimPrefix(head, "ticket:"))
}

func (s *BoardingPassSigner) QRCode(ticket *models.Ticket) ([]byte, error) {
	return qrcode.Encode(s.Payload(ticket), qrcode.Medium, 256)
}

func (s *BoardingPassSigner) generateSignature(data string) string {
	h := hmac.New(sha256.New, s.secretKey)
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
