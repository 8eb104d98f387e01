package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-marketplace/internal/config"
	"github.com/ignatzorin/creative-marketplace/internal/db"
	"github.com/ignatzorin/creative-marketplace/internal/goroutine"
	httpHandlers "github.com/ignatzorin/creative-marketplace/internal/http/handlers"
	httpRouter "github.com/ignatzorin/creative-marketplace/internal/http/router"
	"github.com/ignatzorin/creative-marketplace/internal/infrastructure/persistence"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/handler"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/clock"
	"github.com/ignatzorin/creative-marketplace/internal/repository"
	"github.com/ignatzorin/creative-marketplace/internal/service"
	"github.com/ignatzorin/creative-marketplace/internal/storage"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/chat"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/contract"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/recommendation"
	"github.com/ignatzorin/creative-marketplace/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, warnings, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Env)
	for _, w := range warnings {
		logger.Log.Warn(w)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("main: ошибка подключения к базе")
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		logger.Log.WithError(err).Fatal("main: ошибка миграций")
	}

	clk := clock.Real{}
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	images, err := storage.NewImageStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		logger.Log.WithError(err).Fatal("main: не удалось подготовить файловое хранилище")
	}

	// Вебсокеты.
	hub := ws.NewHub()
	goroutine.GoWithContext(ctx, "ws-hub", hub.Run)

	// Репозитории CRUD.
	userRepo := repository.NewUserRepository(dbConn)
	catalogRepo := repository.NewCatalogRepository(dbConn)
	creativeRepo := repository.NewCreativeRepository(dbConn)
	bookingRepo := repository.NewBookingRepository(dbConn)
	productRepo := repository.NewProductRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)

	// Адаптеры доменных репозиториев.
	interestAdapter := persistence.NewInterestRepositoryAdapter(dbConn)
	subcategoryAdapter := persistence.NewSubcategoryRepositoryAdapter(dbConn)
	creativeAdapter := persistence.NewCreativeRepositoryAdapter(dbConn)
	bookingAdapter := persistence.NewBookingRepositoryAdapter(dbConn)
	contractAdapter := persistence.NewContractRepositoryAdapter(dbConn)
	chatAdapter := persistence.NewChatRepositoryAdapter(dbConn)

	// Use cases.
	saveInterestsUC := recommendation.NewSaveInterestsUseCase(interestAdapter, subcategoryAdapter)
	recommendedUC := recommendation.NewRecommendedCreativesUseCase(interestAdapter, creativeAdapter)
	getOrCreateContractUC := contract.NewGetOrCreateContractUseCase(bookingAdapter, contractAdapter, clk)
	signContractUC := contract.NewSignContractUseCase(contractAdapter, clk)
	sendMessageUC := chat.NewSendMessageUseCase(bookingAdapter, chatAdapter, handler.NewHubPublisher(hub), clk)
	listMessagesUC := chat.NewListMessagesUseCase(bookingAdapter, chatAdapter)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	creativeService := service.NewCreativeService(catalogRepo, creativeRepo)
	bookingService := service.NewBookingService(bookingRepo)
	productService := service.NewProductService(productRepo, images)
	orderService := service.NewOrderService(orderRepo)

	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Health:         httpHandlers.NewHealthHandler(dbConn),
		Auth:           httpHandlers.NewAuthHandler(authService),
		Catalog:        httpHandlers.NewCatalogHandler(creativeService),
		Booking:        httpHandlers.NewBookingHandler(bookingService),
		Product:        httpHandlers.NewProductHandler(productService),
		Order:          httpHandlers.NewOrderHandler(orderService),
		Recommendation: handler.NewRecommendationHandler(saveInterestsUC, recommendedUC),
		Contract:       handler.NewContractHandler(getOrCreateContractUC, signContractUC),
		Chat:           handler.NewChatHandler(sendMessageUC, listMessagesUC, bookingAdapter, hub, tokenManager, cfg.AllowedOrigins),
	}, images.Root())

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.Go("http-shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithField("port", cfg.HTTPPort).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия базы")
	}
}
