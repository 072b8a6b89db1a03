package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/config"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/handler"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL)
	customersAPI := api.NewCustomersClient(client)
	accountsAPI := api.NewAccountsClient(client)
	transactionsAPI := api.NewTransactionsClient(client)
	reportsAPI := api.NewReportsClient(client)

	// Destructive actions are confirmed in the browser before the form posts.
	confirm := pages.AlwaysConfirm

	router := handler.NewRouter(handler.Controllers{
		Customers:    pages.NewCustomersController(customersAPI, confirm),
		Accounts:     pages.NewAccountsController(accountsAPI, customersAPI, confirm),
		Transactions: pages.NewTransactionsController(transactionsAPI, accountsAPI, confirm),
		Reports:      pages.NewReportsController(reportsAPI, customersAPI),
	}, "web/templates/*.tmpl")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Console starting on port %s (backend %s, %s)", cfg.Port, cfg.APIBaseURL, cfg.Env)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
