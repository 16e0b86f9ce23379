// Package main runs the product sync connector: a Kafka consumer that turns
// object change events into Magento saveProduct calls, plus an HTTP admin
// surface for the connector configuration.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/qburst/pimcore-magento-product-connector/internal/admin"
	"github.com/qburst/pimcore-magento-product-connector/internal/audit"
	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/events"
	"github.com/qburst/pimcore-magento-product-connector/internal/graph"
	"github.com/qburst/pimcore-magento-product-connector/internal/sync"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("load .env: %v", err)
	}

	logger := log.New(os.Stdout, "product-connector ", log.LstdFlags)

	store := config.NewStore(envOr("CONNECTOR_CONFIG_PATH", "connector.yaml"))
	if _, err := store.Snapshot(); err != nil {
		logger.Fatalf("configuration store: %v", err)
	}

	auditStore, err := audit.Open(envOr("CONNECTOR_AUDIT_DB", "connector-audit.db"))
	if err != nil {
		logger.Fatalf("audit store: %v", err)
	}
	defer auditStore.Close()

	catalog, err := translate.LoadCatalog(envOr("CONNECTOR_TRANSLATIONS", "translations.yaml"))
	if err != nil {
		logger.Fatalf("translation catalog: %v", err)
	}

	loader := graph.NewClient(
		envOr("OBJECT_API_URL", "http://localhost:8000"),
		os.Getenv("OBJECT_API_KEY"),
		requestTimeout(),
	)

	service := &sync.Service{
		Store:      store,
		Loader:     loader,
		Translator: catalog,
		Sink:       auditStore,
		Logger:     logger,
		Timeout:    requestTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adminServer := &http.Server{
		Addr:    envOr("ADMIN_LISTEN_ADDR", ":8088"),
		Handler: (&admin.Server{Store: store, Logger: logger}).Router(),
	}

	go func() {
		logger.Printf("admin surface listening on %s", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("admin surface: %v", err)
		}
	}()

	brokers := strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := envOr("KAFKA_TOPIC", "pimcore.object.events")
	groupID := envOr("KAFKA_GROUP_ID", "product-connector")

	logger.Printf("consuming %s from %s", topic, strings.Join(brokers, ","))

	if err := events.Run(ctx, brokers, topic, groupID, service.HandleEvent, logger); err != nil {
		logger.Printf("consumer stopped: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("admin shutdown: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func requestTimeout() time.Duration {
	raw := os.Getenv("REQUEST_TIMEOUT")
	if raw == "" {
		return 30 * time.Second
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 30 * time.Second
	}

	return d
}
