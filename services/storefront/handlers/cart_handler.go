package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/cart"
	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/pricing"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/middleware"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/models"
)

type CartHandler struct {
	books catalog.Store
	carts cart.Store
}

func NewCartHandler(books catalog.Store, carts cart.Store) *CartHandler {
	return &CartHandler{books: books, carts: carts}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	current, err := h.carts.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(current))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if _, ok := h.books.Book(req.BookID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Book not found",
		})
		return
	}

	sessionID := middleware.SessionID(c)
	current, err := h.carts.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	// Re-adding an existing item is a no-op; the original protection
	// flag stands.
	if current.Add(req.BookID, req.ProtectionPlan) {
		if err := h.carts.Save(c.Request.Context(), sessionID, current); err != nil {
			h.storeError(c, err)
			return
		}
		log.Debug().Str("book", req.BookID).Str("session", sessionID).Msg("added to cart")
	}

	c.JSON(http.StatusOK, h.view(current))
}

// RemoveItem handles DELETE /cart/items/{bookId}
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	current, err := h.carts.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	// Removing an id that is not in the cart is a no-op.
	current.Remove(c.Param("bookId"))
	if err := h.carts.Save(c.Request.Context(), sessionID, current); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(current))
}

// UpdateProtection handles PATCH /cart/items/{bookId}/protection
func (h *CartHandler) UpdateProtection(c *gin.Context) {
	var req models.UpdateProtectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	sessionID := middleware.SessionID(c)
	current, err := h.carts.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	current.SetProtection(c.Param("bookId"), *req.ProtectionPlan)
	if err := h.carts.Save(c.Request.Context(), sessionID, current); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(current))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	current, err := h.carts.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	current.Clear()
	if err := h.carts.Save(c.Request.Context(), sessionID, current); err != nil {
		h.storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Load returns the session's cart for other handlers (checkout).
func (h *CartHandler) Load(c *gin.Context) (cart.Cart, error) {
	return h.carts.Load(c.Request.Context(), middleware.SessionID(c))
}

// Save persists the session's cart for other handlers (checkout).
func (h *CartHandler) Save(c *gin.Context, current cart.Cart) error {
	return h.carts.Save(c.Request.Context(), middleware.SessionID(c), current)
}

func (h *CartHandler) view(current cart.Cart) models.CartView {
	totals := current.Totals(h.books)

	items := []models.CartItemView{}
	for _, it := range current.Items {
		book, ok := h.books.Book(it.BookID)
		if !ok {
			continue
		}
		fee := 0
		if it.ProtectionPlan {
			fee = pricing.ProtectionFee(book.RentalPrice)
		}
		items = append(items, models.CartItemView{
			Book:           book,
			ProtectionPlan: it.ProtectionPlan,
			ProtectionFee:  fee,
		})
	}

	return models.CartView{
		Items:           items,
		TotalItems:      totals.TotalItems,
		Subtotal:        totals.Subtotal,
		ProtectionTotal: totals.ProtectionTotal,
		GrandTotal:      totals.GrandTotal,
		DeliveryFee:     pricing.DeliveryFeeFor(totals.TotalItems),
		FinalTotal:      pricing.CheckoutTotal(totals.GrandTotal, totals.TotalItems),
	}
}

func (h *CartHandler) storeError(c *gin.Context, err error) {
	log.Error().Err(err).Msg("cart store failure")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "CART_STORE_ERROR",
		Message: "Could not access the cart",
		Details: err.Error(),
	})
}
