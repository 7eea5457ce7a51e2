package main

import (
	"context"
	"log"
	"net/http"

	"plantcart/internal/cart"
	"plantcart/internal/catalog"
	"plantcart/internal/config"
	"plantcart/internal/httpx"
	"plantcart/internal/logger"
	"plantcart/internal/order"
	"plantcart/internal/payment"
	"plantcart/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	snapshots := newSnapshotStore(cfg)

	cartStore := cart.NewStore(snapshots, cfg.CartStorageKey)
	cartStore.Restore(context.Background())

	catalogClient := catalog.NewHTTPLookup(cfg.CatalogBaseURL)
	creator := order.NewHTTPCreator(cfg.OrderAPIBaseURL)
	gateway := payment.NewHTTPGateway(cfg.PaymentBaseURL, cfg.PaymentAPIKey, cfg.PaymentCallbackToken)
	records := order.NewRecordStore()
	workflow := order.NewWorkflow(cartStore, creator, gateway, records, cfg.Currency)

	srv := httpx.New(cartStore, catalogClient, workflow, records, gateway)

	logger.L().Info("storefront server running", zap.String("port", cfg.AppPort))
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv.Router()))
}

// newSnapshotStore picks the cart snapshot backend: redis when configured,
// a local file otherwise, memory-only if the directory is unusable.
func newSnapshotStore(cfg *config.Config) storage.Store {
	if cfg.RedisAddr != "" {
		logger.L().Info("using redis cart storage", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedis(cfg.RedisAddr)
	}

	fileStore, err := storage.NewFile(cfg.CartStorageDir)
	if err != nil {
		logger.L().Warn("cart storage dir unusable, carts will not survive restarts",
			zap.String("dir", cfg.CartStorageDir),
			zap.Error(err),
		)
		return storage.NewMemory()
	}
	return fileStore
}
