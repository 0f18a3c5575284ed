package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/pricing"
	"github.com/zurilabsafrica/booked-brightly/schools"
	"github.com/zurilabsafrica/booked-brightly/services/schools/models"
)

// invoiceDueDays is the payment window given to schools.
const invoiceDueDays = 30

type BulkOrderHandler struct {
	repo    schools.Repository
	books   catalog.Store
	schoolH *SchoolHandler
}

func NewBulkOrderHandler(repo schools.Repository, books catalog.Store, schoolH *SchoolHandler) *BulkOrderHandler {
	return &BulkOrderHandler{repo: repo, books: books, schoolH: schoolH}
}

// Quote handles POST /bulk-orders/quote — pure computation, nothing is
// persisted. Classes are described inline so a school can price an order
// before finishing onboarding.
func (h *BulkOrderHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	booksByGrade, err := h.resolveSelections(req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_SELECTION",
			Message: "Selection references unknown books",
			Details: err.Error(),
		})
		return
	}

	var lines []pricing.BulkLine
	for _, cls := range req.Classes {
		for _, book := range booksByGrade[cls.Grade] {
			lines = append(lines, pricing.BulkLine{
				BookID:      book.ID,
				RentalPrice: book.RentalPrice,
				Students:    cls.Students,
			})
		}
	}

	c.JSON(http.StatusOK, pricing.TotalsForBulk(lines))
}

// Create handles POST /schools/me/bulk-orders. Each selected grade's
// books are ordered for every selected class of that grade; totals are
// computed server-side and an invoice is raised with the order.
func (h *BulkOrderHandler) Create(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	userID := c.GetHeader(UserHeader)
	ctx := c.Request.Context()

	var req models.CreateBulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	booksByGrade, err := h.resolveSelections(req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_SELECTION",
			Message: "Selection references unknown books",
			Details: err.Error(),
		})
		return
	}

	orderID := uuid.NewString()
	var lines []pricing.BulkLine
	var items []schools.BulkOrderItem
	for _, classID := range req.ClassIDs {
		class, err := h.repo.Class(ctx, classID)
		if errors.Is(err, schools.ErrNotFound) || (err == nil && class.SchoolID != school.ID) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_SELECTION",
				Message: "Unknown class " + classID,
			})
			return
		}
		if err != nil {
			repoError(c, err)
			return
		}

		for _, book := range booksByGrade[class.Grade] {
			lineTotal := pricing.LineTotal(book.RentalPrice, class.StudentCount)
			lines = append(lines, pricing.BulkLine{
				BookID:      book.ID,
				RentalPrice: book.RentalPrice,
				Students:    class.StudentCount,
			})
			items = append(items, schools.BulkOrderItem{
				ID:         uuid.NewString(),
				OrderID:    orderID,
				BookID:     book.ID,
				ClassID:    class.ID,
				Quantity:   class.StudentCount,
				UnitPrice:  book.RentalPrice,
				TotalPrice: lineTotal,
			})
		}
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_SELECTION",
			Message: "No books matched the selected classes",
		})
		return
	}

	totals := pricing.TotalsForBulk(lines)

	orderNumber, err := h.repo.NextOrderNumber(ctx)
	if err != nil {
		repoError(c, err)
		return
	}
	order := &schools.BulkOrder{
		ID:              orderID,
		OrderNumber:     orderNumber,
		SchoolID:        school.ID,
		CreatedBy:       userID,
		TotalBooks:      totals.TotalBooks,
		Subtotal:        totals.Subtotal,
		BulkDiscount:    totals.Discount,
		TotalAmount:     totals.Total,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}
	if err := h.repo.CreateBulkOrder(ctx, order, items); err != nil {
		repoError(c, err)
		return
	}

	invoiceNumber, err := h.repo.NextInvoiceNumber(ctx)
	if err != nil {
		repoError(c, err)
		return
	}
	invoice := &schools.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: invoiceNumber,
		SchoolID:      school.ID,
		OrderID:       order.ID,
		Amount:        totals.Total,
		DueDate:       time.Now().UTC().AddDate(0, 0, invoiceDueDays),
	}
	if err := h.repo.CreateInvoice(ctx, invoice); err != nil {
		repoError(c, err)
		return
	}

	log.Info().
		Str("order", order.OrderNumber).
		Str("school", school.ID).
		Int("total", totals.Total).
		Msg("bulk order created")

	c.JSON(http.StatusCreated, models.BulkOrderResponse{
		Order:   *order,
		Items:   items,
		Invoice: *invoice,
		Totals:  totals,
	})
}

// List handles GET /schools/me/bulk-orders
func (h *BulkOrderHandler) List(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}

	orders, err := h.repo.BulkOrders(c.Request.Context(), school.ID)
	if err != nil {
		repoError(c, err)
		return
	}
	if orders == nil {
		orders = []schools.BulkOrder{}
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /schools/me/bulk-orders/{orderId}
func (h *BulkOrderHandler) Get(c *gin.Context) {
	school, ok := h.schoolH.requireSchool(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	order, err := h.repo.BulkOrder(ctx, c.Param("orderId"))
	if errors.Is(err, schools.ErrNotFound) || (err == nil && order.SchoolID != school.ID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Bulk order not found",
		})
		return
	}
	if err != nil {
		repoError(c, err)
		return
	}

	items, err := h.repo.OrderItems(ctx, order.ID)
	if err != nil {
		repoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

// resolveSelections maps each selected grade to its catalog books,
// rejecting ids the catalog does not know or that belong to a different
// grade.
func (h *BulkOrderHandler) resolveSelections(selections []models.GradeBookSelection) (map[int][]catalog.Book, error) {
	out := make(map[int][]catalog.Book, len(selections))
	for _, sel := range selections {
		for _, id := range sel.BookIDs {
			book, ok := h.books.Book(id)
			if !ok {
				return nil, fmt.Errorf("book %s not in catalog", id)
			}
			if book.Grade != sel.Grade {
				return nil, fmt.Errorf("book %s is not a grade %d title", id, sel.Grade)
			}
			out[sel.Grade] = append(out[sel.Grade], book)
		}
	}
	return out, nil
}
