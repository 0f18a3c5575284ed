package handlers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/services/payments/models"
	"github.com/zurilabsafrica/booked-brightly/services/payments/validators"
)

// ChargeHandler simulates the external payment processor for local
// development: it validates payment details and accepts 90% of charges.
type ChargeHandler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewChargeHandler() *ChargeHandler {
	return &ChargeHandler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Charge handles POST /payments/charge
func (h *ChargeHandler) Charge(c *gin.Context) {
	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	switch req.Method {
	case "mpesa":
		if !validators.ValidMSISDN(req.PhoneNumber) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_PHONE_NUMBER",
				Message: "Phone number cannot receive an M-Pesa push",
				Details: "Expected a Kenyan mobile number such as 254712345678 or 0712345678",
			})
			return
		}
	case "card":
		if !validators.ValidCardFormat(req.CardNumber) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_CARD_FORMAT",
				Message: "Invalid card number format",
				Details: "Card must be in format: XXXX-XXXX-XXXX-XXXX",
			})
			return
		}
	}

	if h.shouldAccept() {
		log.Info().Str("method", req.Method).Int("amount", req.Amount).Msg("charge accepted")
		c.JSON(http.StatusOK, models.ChargeResponse{Status: "Accepted"})
		return
	}

	log.Info().Str("method", req.Method).Int("amount", req.Amount).Msg("charge declined")
	c.JSON(http.StatusPaymentRequired, models.ChargeResponse{Status: "Declined"})
}

// shouldAccept returns true 90% of the time.
func (h *ChargeHandler) shouldAccept() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.Float32() < 0.9
}
