package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"theatre-booking/config"
	"theatre-booking/internal/auth"
	"theatre-booking/internal/cache"
	"theatre-booking/internal/database"
	"theatre-booking/internal/handler"
	"theatre-booking/internal/mail"
	"theatre-booking/internal/middleware"
	"theatre-booking/internal/model"
	"theatre-booking/internal/queue"
	"theatre-booking/internal/repository"
	"theatre-booking/internal/service"
	"theatre-booking/internal/worker"
	"theatre-booking/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.Log.Level)
	defer logger.Sync()

	log := logger.WithComponent("main")
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	mailQueue, err := newMailQueue(cfg.Mail, rdb)
	if err != nil {
		log.Fatal("Failed to initialize mail queue", zap.Error(err))
	}

	mailWorker := worker.NewMailWorker(mail.NewLogSender(cfg.Mail.From), mailQueue)
	if err := mailWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start mail worker", zap.Error(err))
	}

	// repositories
	userRepository := repository.NewUserRepository(pool)
	refreshTokenRepository := repository.NewRefreshTokenRepository(pool)
	theatreRepository := repository.NewTheatreRepository(pool)
	auditoriumRepository := repository.NewAuditoriumRepository(pool)
	showRepository := repository.NewShowRepository(pool)
	scheduleRepository := repository.NewScheduleRepository(pool)
	ticketRepository := repository.NewTicketRepository(pool)

	issuer := auth.NewTokenIssuer(auth.TokenConfig{
		AccessSecret:    cfg.Auth.JWTSecret,
		MagicLinkSecret: cfg.Auth.MagicLinkSecret,
		AccessTTL:       cfg.Auth.AccessTokenTTL,
		RefreshTTL:      cfg.Auth.RefreshTokenTTL,
		MagicLinkTTL:    cfg.Auth.MagicLinkTTL,
	})

	// services
	authService := service.NewAuthService(
		userRepository,
		refreshTokenRepository,
		issuer,
		cache.NewMagicLinkGuard(rdb),
		mailQueue,
		service.AuthOptions{
			CallbackURL: cfg.Auth.MagicLinkCallbackURL,
			BcryptCost:  cfg.Auth.BcryptCost,
		},
	)
	userService := service.NewUserService(userRepository)
	theatreService := service.NewTheatreService(theatreRepository, userRepository)
	auditoriumService := service.NewAuditoriumService(auditoriumRepository, theatreRepository)
	showService := service.NewShowService(showRepository)
	activeTicketCache := cache.NewActiveTicketCache(rdb, cfg.Booking.ActiveTicketCacheTTL)
	scheduleService := service.NewScheduleService(scheduleRepository, auditoriumRepository, showRepository, activeTicketCache)
	ticketService := service.NewTicketService(
		database.NewTransactor(pool),
		ticketRepository,
		scheduleRepository,
		activeTicketCache,
		model.ParseCapacityAccounting(cfg.Booking.CapacityAccounting),
	)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	authMw := middleware.RequireAuth(issuer)
	authLimit := middleware.RateLimit(cache.NewRateLimiter(rdb, cfg.Auth.RateLimitPerMinute, time.Minute), "auth")

	handler.NewAuthHandler(authService).RegisterRoutes(router, authMw, authLimit)
	handler.NewUserHandler(userService).RegisterRoutes(router, authMw)
	handler.NewTheatreHandler(theatreService).RegisterRoutes(router, authMw)
	handler.NewAuditoriumHandler(auditoriumService).RegisterRoutes(router, authMw)
	handler.NewShowHandler(showService).RegisterRoutes(router, authMw)
	handler.NewScheduleHandler(scheduleService).RegisterRoutes(router, authMw)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router, authMw)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newMailQueue(cfg config.MailConfig, rdb *redis.Client) (queue.MailQueue, error) {
	switch cfg.Driver {
	case "memory":
		return queue.NewMemoryMailQueue(cfg.BufferSize), nil
	case "amqp":
		return queue.NewAMQPMailQueue(cfg.AMQPURL, cfg.AMQPQueue)
	default:
		hostname, _ := os.Hostname()
		return queue.NewRedisStreamMailQueue(rdb, hostname, nil)
	}
}
