package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"retify/internal/domain"
	accountsvc "retify/internal/service/account"
	cartsvc "retify/internal/service/cart"
	checkoutsvc "retify/internal/service/checkout"
	"retify/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type catalogService interface {
	List(ctx context.Context, collection domain.Collection, category string) ([]domain.Listing, error)
	Get(ctx context.Context, tag string, id int) (*domain.Listing, error)
	Search(ctx context.Context, query, scope string) (*domain.SearchResults, error)
}

type accountService interface {
	Register(ctx context.Context, in accountsvc.RegisterInput) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (*domain.Profile, error)
}

type cartService interface {
	Get(ctx context.Context, token string) ([]domain.CartLine, error)
	Add(ctx context.Context, token string, in cartsvc.AddItemInput) ([]domain.CartLine, error)
	Remove(ctx context.Context, token string, id int, tag string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, token string, id int, tag string, quantity int) ([]domain.CartLine, error)
}

type checkoutService interface {
	Checkout(ctx context.Context, token string, in checkoutsvc.Input) (*domain.Order, error)
	Orders(ctx context.Context, token string) ([]domain.Order, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Sessions    *session.Store
	CatalogSvc  catalogService
	AccountSvc  accountService
	CartSvc     cartService
	CheckoutSvc checkoutService
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Sessions == nil {
		return nil, errors.New("session store required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler)

	api := router.Group("/api", sessionMiddleware(deps.Sessions))
	{
		api.GET("/properties", listHandler(deps.CatalogSvc, domain.CollectionProperty))
		api.GET("/electronics", listHandler(deps.CatalogSvc, domain.CollectionElectronic))
		api.GET("/vehicles", listHandler(deps.CatalogSvc, domain.CollectionVehicle))
		api.GET("/item/:type/:id", itemHandler(deps.CatalogSvc))
		api.GET("/search", searchHandler(deps.CatalogSvc))

		api.POST("/login", loginHandler(deps.AccountSvc, deps.Sessions))
		api.POST("/register", registerHandler(deps.AccountSvc, deps.Sessions))
		api.GET("/logout", logoutHandler(deps.Sessions))
		api.GET("/user", userHandler(deps.Sessions))

		api.GET("/cart", getCartHandler(deps.CartSvc))
		api.POST("/cart", addCartHandler(deps.CartSvc))
		api.DELETE("/cart", removeCartHandler(deps.CartSvc))
		api.POST("/cart/update", updateCartHandler(deps.CartSvc))

		api.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
		api.GET("/orders", ordersHandler(deps.CheckoutSvc))

		api.POST("/contact", contactHandler(logger))
		api.GET("/reviews", reviewsHandler)
		api.GET("/stats", statsHandler)
	}

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(c *gin.Context) {
	// All state is in-process; once the router is up the API is ready.
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
