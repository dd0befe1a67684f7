package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/api"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/config"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/infrastructure/client"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/repository"
	"github.com/KiltonAraujo/2025-3-atividades-02-api/internal/usecase"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	if err := runMigrations(cfg.DB.URL()); err != nil {
		log.Fatal("migrations failed: ", err)
	}

	db, err := client.NewPostgresClient(context.Background(), cfg.DB.URL())
	if err != nil {
		log.Fatal("database connection failed: ", err)
	}
	defer db.Close()
	log.Println("database connection established")

	// event publishing is optional: without a broker URL the service runs
	// without it
	var events usecase.EventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := client.NewRabbitMQClient(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal("rabbitmq connection failed: ", err)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
		log.Println("rabbitmq connection established")
	}

	taskRepo := repository.NewTaskRepository(db.Pool)
	taskService := usecase.NewTaskService(taskRepo, events)
	router := api.NewRouter(taskService, db)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("API listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func runMigrations(dbURL string) error {
	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	log.Println("migrations applied")
	return nil
}
