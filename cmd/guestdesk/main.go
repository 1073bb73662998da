package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"guestdesk/internal/bot"
	"guestdesk/internal/cache"
	"guestdesk/internal/config"
	"guestdesk/internal/http-server/handlers/booking/checkAvailability"
	"guestdesk/internal/http-server/handlers/booking/createBooking"
	"guestdesk/internal/http-server/handlers/booking/deleteBooking"
	"guestdesk/internal/http-server/handlers/booking/getAllBookings"
	"guestdesk/internal/http-server/handlers/booking/updateStatus"
	"guestdesk/internal/http-server/handlers/chat/ping"
	"guestdesk/internal/http-server/handlers/chat/sendMessage"
	"guestdesk/internal/http-server/handlers/payment/createOrder"
	"guestdesk/internal/http-server/handlers/payment/verifyPayment"
	"guestdesk/internal/http-server/handlers/payment/webhook"
	"guestdesk/internal/http-server/handlers/request/createRequest"
	"guestdesk/internal/http-server/middleware/mwlogger"
	"guestdesk/internal/lib/logger/handlers/slogpretty"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/notify"
	"guestdesk/internal/payments/razorpay"
	"guestdesk/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting guestdesk", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	redisCache, err := cache.New(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, availability served uncached", sl.Err(err))
		redisCache = nil
	}

	availability := cache.NewAvailabilityProvider(log, redisCache, storage, &cfg.Hotel)
	payments := razorpay.New(&cfg.Razorpay)
	mailer := notify.NewMailer(&cfg.SMTP)
	concierge := bot.New(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middleware.StripSlashes)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/chat/ping", ping.New(log))
	router.Post("/chat", sendMessage.New(log, concierge))
	router.Post("/request", createRequest.New(log, storage))
	router.Post("/booking", createBooking.New(log, storage, &cfg.Hotel))
	router.Get("/booking", getAllBookings.New(log, storage))
	router.Get("/booking/availability", checkAvailability.New(log, availability))
	router.Patch("/booking/{id}/status", updateStatus.New(log, storage, mailer, availability))
	router.Delete("/booking/{id}", deleteBooking.New(log, storage, availability))
	router.Post("/booking/{id}/create-order", createOrder.New(log, payments, storage))
	router.Post("/booking/payment/verify", verifyPayment.New(log, payments, storage, mailer, availability))
	router.Post("/booking/webhook/razorpay", webhook.New(log, payments, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	if cfg.Hotel.PendingTTL > 0 {
		go func() {
			ticker := time.NewTicker(1 * time.Minute)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if err = storage.CancelExpiredBookings(cfg.Hotel.PendingTTL); err != nil {
						log.Error("failed to cancel expired bookings", sl.Err(err))
					}
				case <-done:
					return
				}
			}
		}()
	}

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if redisCache != nil {
		if err = redisCache.Close(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
