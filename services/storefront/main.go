package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/cart"
	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/clients"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/config"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/handlers"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/middleware"
	"github.com/zurilabsafrica/booked-brightly/services/storefront/rabbitmq"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.LoadConfig()
	log.Info().Str("port", cfg.Port).Msg("starting storefront service")

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	books := catalog.NewSeedStore()

	var carts cart.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		carts = cart.NewRedisStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
		log.Info().Str("redis", cfg.RedisAddr).Msg("using redis cart store")
	} else {
		carts = cart.NewMemoryStore()
		log.Info().Msg("using in-memory cart store")
	}

	channelPool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create RabbitMQ channel pool")
	}
	defer channelPool.Close()
	publisher := rabbitmq.NewPublisher(channelPool, cfg.RabbitMQQueue)

	payments := clients.NewPaymentsClient(cfg.PaymentsURL)

	catalogHandler := handlers.NewCatalogHandler(books)
	cartHandler := handlers.NewCartHandler(books, carts)
	checkoutHandler := handlers.NewCheckoutHandler(cartHandler, payments, publisher)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.SessionHeader},
		ExposeHeaders: []string{middleware.SessionHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Catalog
	router.GET("/books", catalogHandler.ListBooks)
	router.GET("/books/:bookId", catalogHandler.GetBook)
	router.GET("/bundles", catalogHandler.ListBundles)
	router.GET("/bundles/:grade", catalogHandler.GetBundle)

	// Cart and checkout, session-scoped
	session := router.Group("/", middleware.Session())
	session.GET("/cart", cartHandler.GetCart)
	session.POST("/cart/items", cartHandler.AddItem)
	session.DELETE("/cart/items/:bookId", cartHandler.RemoveItem)
	session.PATCH("/cart/items/:bookId/protection", cartHandler.UpdateProtection)
	session.DELETE("/cart", cartHandler.ClearCart)
	session.POST("/cart/checkout", checkoutHandler.Checkout)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
