package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"fintrack/internal/api"        // API handlers
	"fintrack/internal/config"     // Configuration
	"fintrack/internal/middleware" // Auth and page middleware
	"fintrack/internal/report"     // Aggregation engine
	"fintrack/internal/store"      // Record store access layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// gatedPages are the application pages behind the authenticated-session check.
var gatedPages = []string{
	"/profile", "/settings", "/budgets", "/expenses",
	"/income", "/reports", "/assistant", "/receipts",
}

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	recordStore := store.New(gdb)
	reportEngine := report.NewEngine(gdb)

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes. Login/register pages bounce already-authenticated sessions.
	auth := r.Group("/auth")
	auth.POST("/register", middleware.RedirectAuthenticated(cfg.JWTSecret), api.RegisterHandler(gdb))
	auth.POST("/login", middleware.RedirectAuthenticated(cfg.JWTSecret), api.LoginHandler(gdb, cfg.JWTSecret))
	auth.GET("/logout", api.LogoutHandler())
	auth.POST("/logout", api.LogoutHandler())

	// Application pages gated behind a valid session
	pages := r.Group("", middleware.RequirePage(cfg.JWTSecret))
	for _, page := range gatedPages {
		pages.GET(page, api.PageHandler(page))
	}

	// API routes (protected by JWT)
	apiGroup := r.Group("/api", middleware.RequireAuth(cfg.JWTSecret))
	apiGroup.GET("/expenses", api.ListExpensesHandler(recordStore))
	apiGroup.POST("/expenses", api.CreateExpenseHandler(recordStore, redisClient))
	apiGroup.GET("/income", api.ListIncomeHandler(recordStore))
	apiGroup.POST("/income", api.CreateIncomeHandler(recordStore, redisClient))
	apiGroup.GET("/goals", api.ListGoalsHandler(recordStore))
	apiGroup.POST("/goals", api.CreateGoalHandler(recordStore))
	apiGroup.POST("/budgets", api.CreateBudgetHandler(recordStore))
	apiGroup.POST("/budgets/categories", api.AddActiveBudgetCategoryHandler(recordStore))
	apiGroup.POST("/budgets/:budgetId/categories", api.AddBudgetCategoryHandler(recordStore))
	apiGroup.POST("/budgets/:budgetId/expenses", api.AddBudgetExpenseHandler(recordStore, redisClient))
	apiGroup.GET("/notifications", api.ListNotificationsHandler(recordStore))
	apiGroup.POST("/notifications", api.CreateNotificationHandler(recordStore))
	apiGroup.PUT("/notifications/:id", api.MarkNotificationReadHandler(recordStore))
	apiGroup.DELETE("/notifications/:id", api.DeleteNotificationHandler(recordStore))
	apiGroup.GET("/reports/chart-data", api.ChartDataHandler(reportEngine, redisClient))
	apiGroup.POST("/transactions", api.CreateTransactionHandler(recordStore, redisClient))
	apiGroup.GET("/profile", api.GetProfileHandler(recordStore))
	apiGroup.PUT("/profile", api.UpdateProfileHandler(recordStore))

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort) // Start the server on port cfg.AppPort
}
