package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retify/internal/domain"
	accountsvc "retify/internal/service/account"
	cartsvc "retify/internal/service/cart"
	checkoutsvc "retify/internal/service/checkout"
	"retify/internal/session"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogService struct {
	listings  []domain.Listing
	item      *domain.Listing
	results   *domain.SearchResults
	listErr   error
	getErr    error
	searchErr error
}

func (s *stubCatalogService) List(_ context.Context, _ domain.Collection, _ string) ([]domain.Listing, error) {
	return s.listings, s.listErr
}

func (s *stubCatalogService) Get(_ context.Context, _ string, _ int) (*domain.Listing, error) {
	return s.item, s.getErr
}

func (s *stubCatalogService) Search(_ context.Context, _, _ string) (*domain.SearchResults, error) {
	return s.results, s.searchErr
}

type stubAccountService struct {
	profile     *domain.Profile
	loginErr    error
	registerErr error
}

func (s *stubAccountService) Register(_ context.Context, _ accountsvc.RegisterInput) (*domain.Profile, error) {
	return s.profile, s.registerErr
}

func (s *stubAccountService) Login(_ context.Context, _, _ string) (*domain.Profile, error) {
	return s.profile, s.loginErr
}

type stubCartService struct {
	cart          []domain.CartLine
	err           error
	lastAdd       cartsvc.AddItemInput
	lastRemoveID  int
	lastRemoveTag string
	lastUpdateID  int
	lastUpdateTag string
	lastUpdateQty int
}

func (s *stubCartService) Get(_ context.Context, _ string) ([]domain.CartLine, error) {
	return s.cart, s.err
}

func (s *stubCartService) Add(_ context.Context, _ string, in cartsvc.AddItemInput) ([]domain.CartLine, error) {
	s.lastAdd = in
	return s.cart, s.err
}

func (s *stubCartService) Remove(_ context.Context, _ string, id int, tag string) ([]domain.CartLine, error) {
	s.lastRemoveID = id
	s.lastRemoveTag = tag
	return s.cart, s.err
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _ string, id int, tag string, quantity int) ([]domain.CartLine, error) {
	s.lastUpdateID = id
	s.lastUpdateTag = tag
	s.lastUpdateQty = quantity
	return s.cart, s.err
}

type stubCheckoutService struct {
	order  *domain.Order
	orders []domain.Order
	err    error
}

func (s *stubCheckoutService) Checkout(_ context.Context, _ string, _ checkoutsvc.Input) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubCheckoutService) Orders(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

type testDeps struct {
	catalog  *stubCatalogService
	account  *stubAccountService
	cart     *stubCartService
	checkout *stubCheckoutService
	sessions *session.Store
}

func newTestRouter(t *testing.T, d testDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if d.catalog == nil {
		d.catalog = &stubCatalogService{}
	}
	if d.account == nil {
		d.account = &stubAccountService{}
	}
	if d.cart == nil {
		d.cart = &stubCartService{}
	}
	if d.checkout == nil {
		d.checkout = &stubCheckoutService{}
	}
	if d.sessions == nil {
		d.sessions = session.NewStore(time.Hour)
	}
	router, err := buildRouter(logDiscard(), Deps{
		Sessions:    d.sessions,
		CatalogSvc:  d.catalog,
		AccountSvc:  d.account,
		CartSvc:     d.cart,
		CheckoutSvc: d.checkout,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

// do performs a request, carrying any session cookie from a prior response.
func do(router *gin.Engine, req *http.Request, prior *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	if prior != nil {
		for _, c := range prior.Result().Cookies() {
			if c.Name == sessionCookie {
				req.AddCookie(c)
			}
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
