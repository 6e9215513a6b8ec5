package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/Jonathan20044/frog/internal/api"
	"github.com/Jonathan20044/frog/internal/catalog"
	"github.com/Jonathan20044/frog/internal/config"
	"github.com/Jonathan20044/frog/internal/repository"
	"github.com/Jonathan20044/frog/internal/service"
	"github.com/Jonathan20044/frog/migrations"
)

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

// buildStores selects the backend: MySQL when DB_HOST is set, otherwise the
// in-memory store seeded from the catalog.
func buildStores() (repository.StockRepository, repository.OrderRepository, repository.RefillRepository) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Printf("DB_HOST not set, using in-memory store")
		mem := repository.NewMemoryStore(catalog.InitialStock)
		return mem, mem, mem
	}

	db, err := connectDBEnv(host, os.Getenv("DB_PORT"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"))
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateStock(3, db); err != nil {
		log.Fatalf("Failed to migrate stock_items table: %v", err)
	}
	if err := migrations.AutoMigrateOrders(3, db); err != nil {
		log.Fatalf("Failed to migrate orders tables: %v", err)
	}
	if err := migrations.AutoMigrateRefills(3, db); err != nil {
		log.Fatalf("Failed to migrate refill tables: %v", err)
	}

	store := repository.NewMySQLStore(db)
	if err := store.SeedStock(context.Background(), catalog.InitialStock); err != nil {
		log.Fatalf("Failed to seed stock: %v", err)
	}
	return store, store, store
}

func main() {
	stockRepo, orderRepo, refillRepo := buildStores()

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	var kafkaWriter *kafka.Writer
	if os.Getenv("KAFKA_BROKERS") != "" {
		kafkaWriter = config.NewKafkaWriter("order-events")
	}

	ledger := service.NewLedgerService(orderRepo, stockRepo, kafkaWriter, rdb)
	stockService := service.NewStockService(stockRepo, refillRepo)
	reportService := service.NewReportService(orderRepo, refillRepo, catalog.Employees)

	orderHandler := api.NewOrderHandler(ledger)
	inventoryHandler := api.NewInventoryHandler(stockService)
	reportHandler := api.NewReportHandler(reportService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/orders", orderHandler.CreateOrder)
	e.GET("/orders/:id", orderHandler.GetOrder)
	e.PATCH("/orders/:tableId/ready", orderHandler.MarkReady)
	e.POST("/payments", orderHandler.Pay)
	e.GET("/kitchen/orders", orderHandler.KitchenQueue)
	e.GET("/tables", orderHandler.ListTables)
	e.GET("/tables/:id", orderHandler.GetTable)
	e.GET("/menu", orderHandler.GetMenu)
	e.GET("/areas", orderHandler.GetAreas)

	e.GET("/inventory", inventoryHandler.ListStock)
	e.POST("/inventory", inventoryHandler.CreateStockItem)
	e.PUT("/inventory/:id/quantity", inventoryHandler.UpdateQuantity)
	e.DELETE("/inventory/:id", inventoryHandler.DeleteStockItem)
	e.GET("/inventory/low-stock", inventoryHandler.LowStock)
	e.POST("/refills", inventoryHandler.CreateRefill)
	e.GET("/storage/rooms", inventoryHandler.StorageRooms)

	e.GET("/reports/today", reportHandler.Today)
	e.GET("/reports/dashboard", reportHandler.Dashboard)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "frog-pos",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	e.Logger.Fatal(e.Start(addr))
}
