package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zurilabsafrica/booked-brightly/cart"
	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/rental"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/clients"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/middleware"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/models"
)

type fakeGateway struct {
	status string
	err    error
	last   clients.ChargeRequest
}

func (g *fakeGateway) Charge(req clients.ChargeRequest) (string, error) {
	g.last = req
	if g.err != nil {
		return "", g.err
	}
	return g.status, nil
}

type fakePublisher struct {
	err    error
	orders []rental.Order
}

func (p *fakePublisher) PublishRentalOrder(order rental.Order) error {
	if p.err != nil {
		return p.err
	}
	p.orders = append(p.orders, order)
	return nil
}

type testEnv struct {
	router    *gin.Engine
	carts     cart.Store
	gateway   *fakeGateway
	publisher *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	books := catalog.NewSeedStore()
	carts := cart.NewMemoryStore()
	gateway := &fakeGateway{status: clients.PaymentAccepted}
	publisher := &fakePublisher{}

	catalogHandler := NewCatalogHandler(books)
	cartHandler := NewCartHandler(books, carts)
	checkoutHandler := NewCheckoutHandler(cartHandler, gateway, publisher)

	router := gin.New()
	router.GET("/books", catalogHandler.ListBooks)
	router.GET("/books/:bookId", catalogHandler.GetBook)
	router.GET("/bundles", catalogHandler.ListBundles)
	router.GET("/bundles/:grade", catalogHandler.GetBundle)

	session := router.Group("/", middleware.Session())
	session.GET("/cart", cartHandler.GetCart)
	session.POST("/cart/items", cartHandler.AddItem)
	session.DELETE("/cart/items/:bookId", cartHandler.RemoveItem)
	session.PATCH("/cart/items/:bookId/protection", cartHandler.UpdateProtection)
	session.DELETE("/cart", cartHandler.ClearCart)
	session.POST("/cart/checkout", checkoutHandler.Checkout)

	return &testEnv{router: router, carts: carts, gateway: gateway, publisher: publisher}
}

func (e *testEnv) do(t *testing.T, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestListBooks(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/books", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	books := decode[[]catalog.Book](t, rr)
	assert.Len(t, books, 12)

	rr = env.do(t, http.MethodGet, "/books?grade=2", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	books = decode[[]catalog.Book](t, rr)
	require.Len(t, books, 4)
	for _, b := range books {
		assert.Equal(t, 2, b.Grade)
	}

	rr = env.do(t, http.MethodGet, "/books?grade=two", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetBook(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/books/math-g1-001", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	book := decode[catalog.Book](t, rr)
	assert.Equal(t, 340, book.RentalPrice)

	rr = env.do(t, http.MethodGet, "/books/no-such-book", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "NOT_FOUND", body.Error)
}

func TestGetBundle(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/bundles/1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	bundle := decode[catalog.GradeBundle](t, rr)
	assert.Equal(t, 3030, bundle.TotalRetail)
	assert.Equal(t, 1061, bundle.BundlePrice)
	assert.Equal(t, 65, bundle.SavingsPercent)

	// Unknown grades come back empty rather than as an error.
	rr = env.do(t, http.MethodGet, "/bundles/7", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	bundle = decode[catalog.GradeBundle](t, rr)
	assert.Empty(t, bundle.Books)
}

func TestListBundlesSkipsEmptyGrades(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/bundles", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	bundles := decode[[]catalog.GradeBundle](t, rr)
	require.Len(t, bundles, 3)
	for _, b := range bundles {
		assert.NotEmpty(t, b.Books)
	}
}

func TestSessionMintedWhenAbsent(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/cart", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.SessionHeader))
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)
	session := "shopper-1"

	rr := env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001", ProtectionPlan: true})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "eng-g1-001"})
	require.Equal(t, http.StatusOK, rr.Code)

	view := decode[models.CartView](t, rr)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 652, view.Subtotal)
	assert.Equal(t, 51, view.ProtectionTotal)
	assert.Equal(t, 703, view.GrandTotal)
	assert.Equal(t, 250, view.DeliveryFee)
	assert.Equal(t, 953, view.FinalTotal)

	// Re-adding keeps the original protection choice.
	rr = env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001", ProtectionPlan: false})
	require.Equal(t, http.StatusOK, rr.Code)
	view = decode[models.CartView](t, rr)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 51, view.ProtectionTotal)

	off := false
	rr = env.do(t, http.MethodPatch, "/cart/items/math-g1-001/protection", session,
		models.UpdateProtectionRequest{ProtectionPlan: &off})
	require.Equal(t, http.StatusOK, rr.Code)
	view = decode[models.CartView](t, rr)
	assert.Equal(t, 0, view.ProtectionTotal)
	assert.Equal(t, 652, view.GrandTotal)

	rr = env.do(t, http.MethodDelete, "/cart/items/eng-g1-001", session, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	view = decode[models.CartView](t, rr)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, 340, view.Subtotal)

	rr = env.do(t, http.MethodDelete, "/cart", session, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, http.MethodGet, "/cart", session, nil)
	view = decode[models.CartView](t, rr)
	assert.Zero(t, view.TotalItems)
	assert.Zero(t, view.DeliveryFee)
}

func TestAddUnknownBook(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/cart/items", "shopper-1",
		models.AddItemRequest{BookID: "ghost-book"})
	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "NOT_FOUND", body.Error)
}

func TestCartsAreSessionScoped(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/cart/items", "shopper-a",
		models.AddItemRequest{BookID: "math-g1-001"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, "/cart", "shopper-b", nil)
	view := decode[models.CartView](t, rr)
	assert.Zero(t, view.TotalItems)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/cart/checkout", "shopper-1",
		models.CheckoutRequest{PaymentMethod: "mpesa", PhoneNumber: "254712345678"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "EMPTY_CART", body.Error)
}

func TestCheckoutSuccess(t *testing.T) {
	env := newTestEnv(t)
	session := "shopper-1"

	env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001", ProtectionPlan: true})
	env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "eng-g1-001"})

	rr := env.do(t, http.MethodPost, "/cart/checkout", session,
		models.CheckoutRequest{PaymentMethod: "mpesa", PhoneNumber: "254712345678"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[models.CheckoutResponse](t, rr)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, 953, resp.AmountCharged)
	assert.Equal(t, clients.PaymentAccepted, resp.PaymentStatus)
	assert.Equal(t, 953, env.gateway.last.Amount)

	require.Len(t, env.publisher.orders, 1)
	order := env.publisher.orders[0]
	assert.Equal(t, resp.OrderID, order.OrderID)
	assert.Equal(t, session, order.SessionID)
	assert.Equal(t, 652, order.Subtotal)
	assert.Equal(t, 51, order.ProtectionTotal)
	assert.Equal(t, 250, order.DeliveryFee)
	assert.Equal(t, 953, order.Total)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].ProtectionPlan)
	assert.Equal(t, 51, order.Items[0].ProtectionFee)

	// A successful checkout empties the cart.
	current, err := env.carts.Load(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, current.Items)
}

func TestCheckoutDeclined(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.status = clients.PaymentDeclined
	session := "shopper-1"

	env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001"})

	rr := env.do(t, http.MethodPost, "/cart/checkout", session,
		models.CheckoutRequest{PaymentMethod: "card", CardNumber: "4111-1111-1111-1111"})
	require.Equal(t, http.StatusPaymentRequired, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "PAYMENT_DECLINED", body.Error)

	// A declined payment leaves the cart intact.
	current, err := env.carts.Load(context.Background(), session)
	require.NoError(t, err)
	assert.Len(t, current.Items, 1)
}

func TestCheckoutPublishFailure(t *testing.T) {
	env := newTestEnv(t)
	env.publisher.err = errors.New("broker unavailable")
	session := "shopper-1"

	env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001"})

	rr := env.do(t, http.MethodPost, "/cart/checkout", session,
		models.CheckoutRequest{PaymentMethod: "mpesa", PhoneNumber: "0712345678"})
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "ORDER_PROCESSING_ERROR", body.Error)
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	env := newTestEnv(t)
	session := "shopper-1"

	env.do(t, http.MethodPost, "/cart/items", session,
		models.AddItemRequest{BookID: "math-g1-001"})

	rr := env.do(t, http.MethodPost, "/cart/checkout", session,
		models.CheckoutRequest{PaymentMethod: "barter"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode[models.ErrorResponse](t, rr)
	assert.Equal(t, "INVALID_INPUT", body.Error)
}
