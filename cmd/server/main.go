package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/venue-booking-api/internal/auth"
	"github.com/gdg-garage/venue-booking-api/internal/booking"
	"github.com/gdg-garage/venue-booking-api/internal/catalog"
	"github.com/gdg-garage/venue-booking-api/internal/checkout"
	"github.com/gdg-garage/venue-booking-api/internal/config"
	"github.com/gdg-garage/venue-booking-api/internal/database"
	"github.com/gdg-garage/venue-booking-api/internal/handlers"
	"github.com/gdg-garage/venue-booking-api/internal/logging"
	"github.com/gdg-garage/venue-booking-api/internal/notifier"
	"github.com/gdg-garage/venue-booking-api/internal/sessions"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	pricing, err := booking.PricingByName(cfg.PricingStrategy)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	cart, err := newCart(ctx, cfg, logger)
	if err != nil {
		return err
	}

	bookingNotifier, err := notifier.NewFromConfig(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID, logger)
	if err != nil {
		logger.Warn("Discord notifier not initialized", zap.Error(err))
		bookingNotifier = notifier.NopNotifier{}
	}

	manager := sessions.NewManager(store, pricing, logger)
	limiter := auth.NewIPLimiter(cfg.RateLimitPerMinute)
	sessionHandler := auth.NewSessionHandler(cfg.SessionSecret, cfg.IsProduction(), limiter, logger)
	catalogHandler := handlers.NewCatalogHandler(cat)
	bookingHandler := handlers.NewBookingHandler(manager, cat, cfg.MerchandiseID, logger)
	checkoutHandler := handlers.NewCheckoutHandler(manager, cart, bookingNotifier, cfg.MerchandiseID, cfg.ResetAfterCheckout, logger)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, logger, cfg.TrustProxy, sessionHandler, catalogHandler, bookingHandler, checkoutHandler)

	sweepers := map[string]sweeper{"rate_limiters": limiter}
	if mem, ok := store.(*sessions.MemoryStore); ok {
		sweepers["sessions"] = mem
	}
	go sweepEvery(ctx, cfg.SweepInterval, logger, sweepers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("session_store", cfg.SessionStore),
			zap.String("cart_backend", cfg.CartBackend),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type sweeper interface {
	Sweep() int
}

// sweepEvery evicts stale in-process state until ctx is done. Badger and
// Redis expire their own entries.
func sweepEvery(ctx context.Context, interval time.Duration, logger *zap.Logger, sweepers map[string]sweeper) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for name, s := range sweepers {
				if n := s.Sweep(); n > 0 {
					logger.Debug("Swept stale entries", zap.String("kind", name), zap.Int("count", n))
				}
			}
		}
	}
}

func openStore(ctx context.Context, cfg *config.Config) (sessions.Store, error) {
	switch cfg.SessionStore {
	case config.StoreBadger:
		return sessions.OpenBadgerStore(cfg.BadgerPath, cfg.SessionTTL)
	case config.StoreRedis:
		return sessions.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
	default:
		return sessions.NewMemoryStore(cfg.SessionTTL), nil
	}
}

func newCart(ctx context.Context, cfg *config.Config, logger *zap.Logger) (checkout.Cart, error) {
	if cfg.CartBackend == config.CartStorefront {
		return checkout.NewStorefrontCart(ctx, checkout.StorefrontConfig{
			CartURL:      cfg.StorefrontCartURL,
			TokenURL:     cfg.StorefrontTokenURL,
			ClientID:     cfg.StorefrontClientID,
			ClientSecret: cfg.StorefrontClientSecret,
		}, logger), nil
	}

	// Connect to Database
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return checkout.NewLocalCart(db, cfg.CheckoutBaseURL, logger), nil
}
