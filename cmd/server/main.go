package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/infrastructure/config"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/infrastructure/persistence"
	cmdRouter "github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/infrastructure/router"
	repo "github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/interface/repository"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/usecase"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type commandRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Command   string `json:"command"`
}

type commandResponse struct {
	Response string `json:"response"`
}

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Amadeus Trainer")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection for the PNR store
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Flight reference data lives in PostgreSQL
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	pnrRepository := repo.NewMongoPNRRepository(db)
	flightRepository := repo.NewGormFlightRepository(gormDB)

	// Set up the command core
	m := metrics.NewMetrics("amadeus_trainer")
	formatter := usecase.NewFormatter(cfg.OfficeID)
	mirror := usecase.NewPNRMirror(pnrRepository, log, m, cfg.PersistTimeout)
	sessions := usecase.NewSessionManager()

	router := cmdRouter.NewCommandRouter(sessions, m, log)

	// Longer literal prefixes before their shorter cousins
	router.Register(usecase.NewFOIDHandler(mirror, formatter))
	router.Register(usecase.NewSSRHandler(mirror, formatter))
	router.Register(usecase.NewEmailContactHandler(mirror, formatter))
	router.Register(usecase.NewPhoneContactHandler(mirror, formatter))
	router.Register(usecase.NewAvailabilityHandler(flightRepository, formatter, log))
	router.Register(usecase.NewSellHandler(mirror, formatter, cfg.OfficeID, log))
	router.Register(usecase.NewNameHandler(mirror, formatter, log))
	router.Register(usecase.NewReceivedFromHandler(mirror, formatter, m, log))
	router.Register(usecase.NewRemarkHandler(mirror, formatter))
	router.Register(usecase.NewOSIHandler(mirror, formatter))
	router.Register(usecase.NewTicketingHandler(mirror, formatter))
	router.Register(usecase.NewDeleteHandler(mirror, formatter))
	router.Register(usecase.NewCancelHandler(log))
	router.Register(usecase.NewIgnoreHandler())
	router.Register(usecase.NewEndTransactionHandler(mirror, formatter, m, log))
	router.Register(usecase.NewRetrieveHandler(pnrRepository, formatter, log))
	router.Register(usecase.NewSeatHandler(mirror, formatter))
	router.Register(usecase.NewSeatMapHandler())

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/command", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		response := router.Dispatch(r.Context(), req.SessionID, req.UserID, req.Command)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(commandResponse{Response: response})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Amadeus Trainer stopped")
}
