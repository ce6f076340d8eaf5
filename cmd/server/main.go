package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/retail-checkout/internal/adapter/handler"
	"github.com/rl1809/retail-checkout/internal/adapter/shipping"
	"github.com/rl1809/retail-checkout/internal/adapter/storage"
	"github.com/rl1809/retail-checkout/internal/core/service"
	"github.com/rl1809/retail-checkout/internal/metrics"
	"github.com/rl1809/retail-checkout/internal/seed"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultMySQLDSN  = "root:root@tcp(localhost:3306)/checkout?parseTime=true"
	defaultRedisAddr = "localhost:6379"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpAddr := envOr("HTTP_ADDR", defaultHTTPAddr)
	mysqlDSN := envOr("MYSQL_DSN", defaultMySQLDSN)
	redisAddr := envOr("REDIS_ADDR", defaultRedisAddr)

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		logger.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	mirror := storage.NewRedisAdapter(rdb)
	archive := storage.NewMySQLAdapter(db)

	catalog := seed.Catalog()
	customer := seed.Customer()

	// Publish seeded quantities so the mirror starts in sync.
	for _, name := range catalog.Names() {
		product, _ := catalog.Find(name)
		if err := mirror.SetStock(ctx, name, product.Quantity()); err != nil {
			logger.Fatal("failed to publish stock", zap.String("product", name), zap.Error(err))
		}
	}
	logger.Info("published stock mirror", zap.Int("products", len(catalog.Names())))

	shipper := shipping.NewConsoleShipper(os.Stdout)
	checkoutService := service.NewCheckoutService(shipper, archive, mirror, logger)
	checkoutMetrics := metrics.NewCheckoutMetrics()

	httpHandler := handler.NewHTTPHandler(catalog, customer, checkoutService, checkoutMetrics)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/products", httpHandler.ListProducts)
	mux.HandleFunc("/api/cart/add", httpHandler.AddToCart)
	mux.HandleFunc("/api/checkout", httpHandler.Checkout)
	mux.Handle("/metrics", metrics.Handler())

	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}
