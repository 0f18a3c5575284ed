package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/catalog"
	"github.com/zurilabsafrica/booked-brightly/schools"
	"github.com/zurilabsafrica/booked-brightly/services/schools/config"
	"github.com/zurilabsafrica/booked-brightly/services/schools/handlers"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.LoadConfig()
	log.Info().Str("port", cfg.Port).Msg("starting schools service")

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("failed to create data directory")
		}
	}
	db, err := schools.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	repo := schools.NewSQLiteRepo(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}
	log.Info().Str("db", cfg.DBPath).Msg("schema ready")

	books := catalog.NewSeedStore()

	schoolHandler := handlers.NewSchoolHandler(repo)
	orderHandler := handlers.NewBulkOrderHandler(repo, books, schoolHandler)
	invoiceHandler := handlers.NewInvoiceHandler(repo, schoolHandler)
	distributionHandler := handlers.NewDistributionHandler(repo, schoolHandler)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", handlers.UserHeader},
		MaxAge:       12 * time.Hour,
	}))

	router.POST("/schools", schoolHandler.Register)
	router.POST("/bulk-orders/quote", orderHandler.Quote)

	me := router.Group("/schools/me")
	me.GET("", schoolHandler.Me)
	me.GET("/summary", schoolHandler.Summary)
	me.GET("/classes", schoolHandler.ListClasses)
	me.POST("/classes", schoolHandler.CreateClass)
	me.GET("/bulk-orders", orderHandler.List)
	me.POST("/bulk-orders", orderHandler.Create)
	me.GET("/bulk-orders/:orderId", orderHandler.Get)
	me.GET("/invoices", invoiceHandler.List)
	me.POST("/invoices/:invoiceId/payments", invoiceHandler.RecordPayment)
	me.GET("/distributions", distributionHandler.List)
	me.POST("/distributions", distributionHandler.Create)
	me.PATCH("/distributions/:distributionId", distributionHandler.Update)
	me.GET("/distributions/:distributionId/items", distributionHandler.ListItems)
	me.POST("/distributions/:distributionId/items", distributionHandler.AddItem)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
