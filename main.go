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

	"github.com/gin-gonic/gin"
	"github.com/goodzap/backoffice/config"
	"github.com/goodzap/backoffice/database"
	"github.com/goodzap/backoffice/hub"
	"github.com/goodzap/backoffice/models"
	"github.com/goodzap/backoffice/router"
	"github.com/goodzap/backoffice/utils"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	utils.InitLogger(cfg.LogFormat)
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	models.CustomersTable = cfg.CustomersTable

	db, err := config.InitDB(cfg, utils.InfoLogger)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InfoLogger.Printf("Connected to %s database", cfg.DBDriver)

	if missing, err := database.Prepare(db, cfg.AutoMigrate); err != nil {
		utils.ErrorLogger.Fatalf("Failed to prepare database: %v", err)
	} else if len(missing) > 0 {
		utils.ErrorLogger.Printf("%d tables are missing, set AUTO_MIGRATE=true to create them", len(missing))
	}

	h := hub.New()
	events := hub.Fanout{h}
	if cfg.AMQPURL != "" {
		amqpPub, err := hub.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			utils.ErrorLogger.Printf("AMQP disabled: %v", err)
		} else {
			defer amqpPub.Close()
			events = append(events, amqpPub)
			utils.InfoLogger.Printf("Publishing changes to exchange %s", cfg.AMQPExchange)
		}
	}

	r := router.SetupRouter(db, cfg, h, events)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	utils.InfoLogger.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			utils.ErrorLogger.Printf("Closing database: %v", err)
		}
	}
	utils.InfoLogger.Println("Server stopped")
}
