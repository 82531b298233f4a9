package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"retify/internal/config"
	"retify/internal/httpserver"
	catalogrepo "retify/internal/repository/catalog"
	identityrepo "retify/internal/repository/identity"
	orderrepo "retify/internal/repository/order"
	"retify/internal/seed"
	accountsvc "retify/internal/service/account"
	cartsvc "retify/internal/service/cart"
	catalogsvc "retify/internal/service/catalog"
	checkoutsvc "retify/internal/service/checkout"
	"retify/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	catalogRepo := catalogrepo.NewMemory(seed.Properties(), seed.Electronics(), seed.Vehicles())
	identityRepo := identityrepo.NewMemory()
	orderRepo := orderrepo.NewMemory()
	if err := seed.Apply(ctx, identityRepo); err != nil {
		logger.Fatalf("seed identities: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	catalogService := catalogsvc.New(catalogRepo)
	accountService := accountsvc.New(identityRepo)
	cartService := cartsvc.New(sessions)
	checkoutService := checkoutsvc.New(sessions, orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Sessions:    sessions,
		CatalogSvc:  catalogService,
		AccountSvc:  accountService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
