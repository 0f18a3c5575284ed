package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/pricing"
	"github.com/zurilabsafrica/booked-brightly/rental"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/clients"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/middleware"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/models"
)

// OrderPublisher hands a paid order to fulfillment.
type OrderPublisher interface {
	PublishRentalOrder(order rental.Order) error
}

// PaymentsGateway initiates payment collection for a checkout amount.
type PaymentsGateway interface {
	Charge(req clients.ChargeRequest) (string, error)
}

type CheckoutHandler struct {
	cartHandler *CartHandler
	payments    PaymentsGateway
	publisher   OrderPublisher
}

func NewCheckoutHandler(cartHandler *CartHandler, payments PaymentsGateway, publisher OrderPublisher) *CheckoutHandler {
	return &CheckoutHandler{
		cartHandler: cartHandler,
		payments:    payments,
		publisher:   publisher,
	}
}

// Checkout handles POST /cart/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	current, err := h.cartHandler.Load(c)
	if err != nil {
		h.cartHandler.storeError(c, err)
		return
	}

	totals := current.Totals(h.cartHandler.books)
	if totals.TotalItems == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_CART",
			Message: "Cannot checkout an empty cart",
		})
		return
	}

	finalTotal := pricing.CheckoutTotal(totals.GrandTotal, totals.TotalItems)
	sessionID := middleware.SessionID(c)

	status, err := h.payments.Charge(clients.ChargeRequest{
		Amount:      finalTotal,
		Method:      req.PaymentMethod,
		PhoneNumber: req.PhoneNumber,
		CardNumber:  req.CardNumber,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "PAYMENT_ERROR",
			Message: "Failed to initiate payment",
			Details: err.Error(),
		})
		return
	}
	if status != clients.PaymentAccepted {
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{
			Error:   "PAYMENT_DECLINED",
			Message: "Payment was declined",
		})
		return
	}

	order := rental.Order{
		OrderID:         uuid.NewString(),
		SessionID:       sessionID,
		Subtotal:        totals.Subtotal,
		ProtectionTotal: totals.ProtectionTotal,
		DeliveryFee:     pricing.DeliveryFeeFor(totals.TotalItems),
		Total:           finalTotal,
		PaymentMethod:   req.PaymentMethod,
		PlacedAt:        time.Now().UTC(),
	}
	for _, it := range current.Items {
		book, ok := h.cartHandler.books.Book(it.BookID)
		if !ok {
			continue
		}
		fee := 0
		if it.ProtectionPlan {
			fee = pricing.ProtectionFee(book.RentalPrice)
		}
		order.Items = append(order.Items, rental.Line{
			BookID:         book.ID,
			Title:          book.Title,
			RentalPrice:    book.RentalPrice,
			ProtectionPlan: it.ProtectionPlan,
			ProtectionFee:  fee,
		})
	}

	if err := h.publisher.PublishRentalOrder(order); err != nil {
		log.Error().Err(err).Str("order", order.OrderID).Msg("failed to publish rental order")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "ORDER_PROCESSING_ERROR",
			Message: "Failed to send order to fulfillment",
			Details: err.Error(),
		})
		return
	}

	current.Clear()
	if err := h.cartHandler.Save(c, current); err != nil {
		// The order is already placed; an unclear cart is recoverable.
		log.Warn().Err(err).Str("session", sessionID).Msg("could not clear cart after checkout")
	}

	log.Info().
		Str("order", order.OrderID).
		Int("total", finalTotal).
		Str("method", req.PaymentMethod).
		Msg("checkout complete")

	c.JSON(http.StatusOK, models.CheckoutResponse{
		OrderID:       order.OrderID,
		AmountCharged: finalTotal,
		PaymentStatus: status,
	})
}
