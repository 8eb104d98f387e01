package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/creative-marketplace/internal/config"
	"github.com/ignatzorin/creative-marketplace/internal/http/handlers"
	"github.com/ignatzorin/creative-marketplace/internal/http/middleware"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/handler"
)

// Handlers собирает все HTTP обработчики приложения.
type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Catalog        *handlers.CatalogHandler
	Booking        *handlers.BookingHandler
	Product        *handlers.ProductHandler
	Order          *handlers.OrderHandler
	Recommendation *handler.RecommendationHandler
	Contract       *handler.ContractHandler
	Chat           *handler.ChatHandler
}

func SetupRouter(cfg *config.Config, h Handlers, mediaRoot string) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFS("/media", http.Dir(mediaRoot))

	api := r.Group("/api")

	authGroup := api.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register/", h.Auth.Register)
		authGroup.POST("/login/", h.Auth.Login)
	}

	// Каталог
	api.GET("/industries/", h.Catalog.ListIndustries)
	api.GET("/subcategories/", h.Catalog.ListSubcategories)
	api.GET("/creatives/", h.Catalog.ListCreatives)
	api.POST("/create-profile/", h.Catalog.CreateProfile)
	api.GET("/creative-profile/", h.Catalog.GetProfileByUser)

	// Рекомендации
	api.POST("/save-interests/", h.Recommendation.SaveInterests)
	api.GET("/creatives/recommended/", h.Recommendation.Recommended)

	// Бронирования и договоры
	api.POST("/bookings/", h.Booking.Create)
	api.GET("/my-bookings/", h.Booking.List)
	api.GET("/bookings/:id/", h.Booking.Get)
	api.PUT("/bookings/:id/", h.Booking.Update)
	api.PATCH("/bookings/:id/", h.Booking.Update)
	api.DELETE("/bookings/:id/", h.Booking.Delete)
	api.GET("/contract/booking/:booking_id/", h.Contract.GetByBooking)
	api.POST("/contract/sign/:contract_id/", h.Contract.Sign)

	// Товары, заказы, пакеты услуг
	api.GET("/products/", h.Product.List)
	api.POST("/products/", h.Product.Create)
	api.GET("/products/:id/", h.Product.Get)
	api.PUT("/products/:id/", h.Product.Update)
	api.PATCH("/products/:id/", h.Product.Update)
	api.DELETE("/products/:id/", h.Product.Delete)
	api.POST("/products/:id/image/", h.Product.UploadImage)
	api.GET("/orders/", h.Order.List)
	api.POST("/orders/", h.Order.Create)
	api.GET("/orders/:id/", h.Order.Get)
	api.PUT("/orders/:id/", h.Order.Update)
	api.PATCH("/orders/:id/", h.Order.Update)
	api.DELETE("/orders/:id/", h.Order.Delete)
	api.GET("/service-packages/", h.Product.ListPackages)
	api.POST("/service-packages/", h.Product.CreatePackage)

	// Модерация
	api.GET("/admin/pending-creatives/", h.Catalog.ListPending)
	api.POST("/admin/manage-creative/:id/", h.Catalog.Moderate)

	// Чат бронирования
	api.GET("/chat/:booking_id/", h.Chat.ListMessages)
	api.POST("/chat/:booking_id/send/", h.Chat.SendMessage)
	api.GET("/ws/chat/:booking_id/", h.Chat.Subscribe)

	return r
}
