package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/schools"
	"github.com/zurilabsafrica/booked-brightly/services/schools/models"
)

type InvoiceHandler struct {
	repo    schools.Repository
	schoolH *SchoolHandler
}

func NewInvoiceHandler(repo schools.Repository, schoolH *SchoolHandler) *InvoiceHandler {
	return &InvoiceHandler{repo: repo, schoolH: schoolH}
}

// List handles GET /schools/me/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}

	invoices, err := h.repo.Invoices(c.Request.Context(), school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	if invoices == nil {
		invoices = []schools.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// RecordPayment handles POST /schools/me/invoices/{invoiceId}/payments.
// Payment execution happens at the processor; this endpoint records the
// settled reference against the invoice.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	invoiceID := c.Param("invoiceId")

	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	invoice, err := h.repo.Invoice(ctx, invoiceID)
	if errors.Is(err, schools.ErrNotFound) || (err == nil && invoice.SchoolID != school.ID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Invoice not found",
		})
		return
	}
	if err != nil {
		repoError(c, err)
		return
	}

	if err := h.repo.MarkInvoicePaid(ctx, invoiceID, req.Method, req.Reference); err != nil {
		if errors.Is(err, schools.ErrNotFound) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "ALREADY_PAID",
				Message: "Invoice is already settled",
			})
			return
		}
		repoError(c, err)
		return
	}

	updated, err := h.repo.Invoice(ctx, invoiceID)
	if err != nil {
		repoError(c, err)
		return
	}

	log.Info().Str("invoice", updated.InvoiceNumber).Str("method", req.Method).Msg("invoice paid")
	c.JSON(http.StatusOK, updated)
}
