package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mcosta/finance-dashboard/internal/config"
	"github.com/mcosta/finance-dashboard/internal/handler"
	"github.com/mcosta/finance-dashboard/internal/integrations/binance"
	"github.com/mcosta/finance-dashboard/internal/integrations/ecb"
	"github.com/mcosta/finance-dashboard/internal/middleware"
	"github.com/mcosta/finance-dashboard/internal/notify"
	"github.com/mcosta/finance-dashboard/internal/repository"
	"github.com/mcosta/finance-dashboard/internal/scheduler"
	"github.com/mcosta/finance-dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment")
	}
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	quotes := binance.NewClient(cfg, logger)
	svc := service.NewService(repo, quotes, logger, cfg)
	h := handler.NewHandler(svc, logger)
	ratesClient := ecb.NewClient(cfg, logger)
	sender := notify.NewSender(cfg, logger)

	// Background jobs
	jobs, err := scheduler.New(svc, sender, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize scheduler: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// ECB reference rate endpoint
	r.HandleFunc("/rates/{currency}", func(w http.ResponseWriter, r *http.Request) {
		currency := mux.Vars(r)["currency"]
		rate, err := ratesClient.GetRate(currency)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get rate: %v", err), http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"rate": rate})
	}).Methods("GET")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))

	authRouter.HandleFunc("/profile", h.GetProfile).Methods("GET")
	authRouter.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")

	authRouter.HandleFunc("/credit-cards", h.ListCreditCards).Methods("GET")
	authRouter.HandleFunc("/credit-cards", h.CreateCreditCard).Methods("POST")
	authRouter.HandleFunc("/credit-cards/{id}", h.UpdateCreditCard).Methods("PUT")
	authRouter.HandleFunc("/credit-cards/{id}", h.DeleteCreditCard).Methods("DELETE")

	authRouter.HandleFunc("/card-purchases", h.ListCardPurchases).Methods("GET")
	authRouter.HandleFunc("/card-purchases", h.CreateCardPurchase).Methods("POST")
	authRouter.HandleFunc("/card-purchases/{id}", h.DeleteCardPurchase).Methods("DELETE")

	authRouter.HandleFunc("/fixed-expenses", h.ListFixedExpenses).Methods("GET")
	authRouter.HandleFunc("/fixed-expenses", h.CreateFixedExpense).Methods("POST")
	authRouter.HandleFunc("/fixed-expenses/{id}", h.UpdateFixedExpense).Methods("PUT")
	authRouter.HandleFunc("/fixed-expenses/{id}", h.DeleteFixedExpense).Methods("DELETE")

	authRouter.HandleFunc("/extra-expenses", h.ListExtraExpenses).Methods("GET")
	authRouter.HandleFunc("/extra-expenses", h.CreateExtraExpense).Methods("POST")
	authRouter.HandleFunc("/extra-expenses/{id}", h.DeleteExtraExpense).Methods("DELETE")

	authRouter.HandleFunc("/investments", h.ListInvestments).Methods("GET")
	authRouter.HandleFunc("/investments", h.CreateInvestment).Methods("POST")
	authRouter.HandleFunc("/investments/refresh-prices", h.RefreshCryptoPrices).Methods("POST")
	authRouter.HandleFunc("/investments/{id}", h.UpdateInvestment).Methods("PUT")
	authRouter.HandleFunc("/investments/{id}", h.DeleteInvestment).Methods("DELETE")

	authRouter.HandleFunc("/income-sources", h.ListIncomeSources).Methods("GET")
	authRouter.HandleFunc("/income-sources", h.CreateIncomeSource).Methods("POST")
	authRouter.HandleFunc("/income-sources/{id}", h.UpdateIncomeSource).Methods("PUT")
	authRouter.HandleFunc("/income-sources/{id}", h.DeleteIncomeSource).Methods("DELETE")

	authRouter.HandleFunc("/income-history", h.ListIncomeHistory).Methods("GET")
	authRouter.HandleFunc("/income-history", h.CreateIncomeHistory).Methods("POST")

	authRouter.HandleFunc("/summary", h.GetFinancialSummary).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
