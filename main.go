package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"shoaib/cart"
	"shoaib/catalog"
	"shoaib/checkout"
	"shoaib/config"
	"shoaib/db"
	"shoaib/mq"
	"shoaib/products"
	"shoaib/ratelim"
	"shoaib/rdx"
	"shoaib/routes"
	"shoaib/whatsapp"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// thumbnails override this
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs each request method, path, status, remote address, and duration.
func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Int("status", rec.status),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// corsOptions lets the listed origins send the cart cookie. A "*" entry
// opens the API to any origin but then no credentials are allowed.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}
	if slices.Contains(origins, "*") {
		opts.AllowCredentials = false
	}
	return opts
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// loadCatalog reads the product list once. A catalog stored in MongoDB is
// copied into memory and the connection closed again.
func loadCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogSource != config.CatalogMongo {
		return catalog.Default()
	}

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn("mongo disconnect", zap.Error(err))
		}
	}()

	list, err := db.LoadProducts(ctx, client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded from mongo",
		zap.String("database", cfg.MongoDatabase),
		zap.String("collection", cfg.MongoCollection),
		zap.Int("products", len(list)))
	return catalog.New(list)
}

// newEmitter publishes checkout events to Redis when REDIS_ADDR is set and
// reachable, and only logs them otherwise.
func newEmitter(ctx context.Context, cfg config.Config, log *zap.Logger) (mq.Emitter, *redis.Client) {
	if cfg.RedisAddr == "" {
		return mq.NewLogEmitter(log), nil
	}
	conn, err := rdx.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("redis unavailable; checkout events will only be logged", zap.Error(err))
		return mq.NewLogEmitter(log), nil
	}
	log.Info("publishing checkout events", zap.String("addr", cfg.RedisAddr), zap.String("channel", cfg.CheckoutChannel))
	return mq.NewRedisEmitter(conn, cfg.CheckoutChannel, log), conn
}

// setupRouter builds the storefront router.
func setupRouter(h routes.Handlers, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	routes.RoutesWrapper(router, h, rateLimiter)
	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	linker, err := whatsapp.NewLinker(cfg.WhatsAppNumber)
	if err != nil {
		logger.Fatal("invalid WHATSAPP_NUMBER", zap.Error(err))
	}

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("catalog load failed", zap.String("source", cfg.CatalogSource), zap.Error(err))
	}

	emitter, redisConn := newEmitter(ctx, cfg, logger)

	sessions := cart.NewSessions(cfg.SessionIdleTimeout, logger.Named("sessions"))
	go sessions.Run(ctx, time.Minute)

	rateLimiter := ratelim.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	go rateLimiter.Run(ctx, 5*time.Minute)

	carts := cart.NewHandler(cat, sessions, cfg.CurrencySymbol, logger.Named("cart"))
	service := checkout.NewService(whatsapp.NewFormatter(cfg.ShopName, cfg.CurrencySymbol), linker, emitter, logger.Named("checkout"))

	router := setupRouter(routes.Handlers{
		Products: products.NewHandler(cat, cfg.ImageDir, logger.Named("products")),
		Cart:     carts,
		Checkout: checkout.NewHandler(service, carts, cat, cfg.ShopName, cfg.CurrencyCode, logger.Named("checkout")),
		ImageDir: cfg.ImageDir,
	}, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(corsOptions(cfg.AllowedOrigins)).Handler(router)

	handler := loggingMiddleware(logger.Named("http"), securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		if redisConn != nil {
			if err := redisConn.Close(); err != nil {
				logger.Warn("redis close", zap.Error(err))
			}
		}
	})

	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Addr()),
			zap.String("shop", cfg.ShopName),
			zap.Int("products", cat.Len()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutdown signal received; shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped cleanly")
}
