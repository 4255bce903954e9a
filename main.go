package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"almanac/config"
	"almanac/database"
	"almanac/handlers"
	"almanac/middleware"
	"almanac/services"
	"almanac/store"
)

func main() {
	// Load configuration
	cfg := config.GetConfig()

	// Connect to database
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Stores and services, built once and passed down explicitly
	eventStore := store.NewEventStore(db)
	userStore := store.NewUserStore(db)
	auditLogger := services.NewAuditLogger(db)
	broadcaster := services.NewBroadcaster()

	// The scanner only sees the store's read interface; notifications go to
	// the log and to connected reminder sockets.
	scanner := services.NewReminderScanner(
		eventStore,
		time.Duration(cfg.ReminderLookaheadMinutes)*time.Minute,
		func(message string) {
			log.Println(message)
			broadcaster.Publish(message)
		},
	)

	eventHandler := handlers.NewEventHandler(eventStore, auditLogger)
	authHandler := handlers.NewAuthHandler(userStore, auditLogger)
	auditHandler := handlers.NewAuditHandler(auditLogger)
	reminderHandler := handlers.NewReminderHandler(broadcaster)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Almanac",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173,http://localhost:3000,http://localhost:8080",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// WebSocket route for reminder notifications (must be before other
	// routes to avoid middleware conflicts)
	app.Use("/reminders/ws", reminderHandler.WebSocketUpgrade)
	app.Get("/reminders/ws", websocket.New(reminderHandler.StreamReminders))

	// Rate limiter for auth endpoints (5 requests per minute per IP)
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many login attempts. Please try again later.",
			})
		},
	})

	// Event routes
	app.Get("/", eventHandler.Home)
	app.Get("/add", eventHandler.ShowAddForm)
	app.Post("/add", eventHandler.AddEvent)
	app.Post("/add_recurring", eventHandler.AddRecurring)
	app.Get("/delete/:id", eventHandler.DeleteEvent)
	app.Post("/delete/:id", eventHandler.DeleteEvent)
	app.Get("/edit/:id", eventHandler.ShowEditForm)
	app.Post("/edit/:id", eventHandler.ShowEditForm)
	app.Post("/save/:id", eventHandler.SaveEvent)

	// View routes
	app.Get("/calendar", eventHandler.CalendarView)
	app.Get("/day/:date", eventHandler.DayView)
	app.Get("/events", eventHandler.EventsJSON)
	app.Get("/task", eventHandler.TaskView)
	app.Get("/export.ics", eventHandler.ExportICS)

	// API routes
	api := app.Group("/api")

	// Public routes (with rate limiting on auth)
	api.Get("/setup/status", authHandler.CheckSetup)
	api.Post("/setup", authLimiter, authHandler.Setup)
	api.Post("/login", authLimiter, authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired())
	protected.Get("/user", authHandler.GetCurrentUser)

	// Audit log routes
	audit := protected.Group("/audit")
	audit.Get("/logs", auditHandler.ListAuditLogs)
	audit.Get("/actions", auditHandler.GetAuditActions)

	// Serve static files (frontend) in production
	if cfg.Production {
		app.Static("/static", "./static")
	}

	// Start the reminder scanner
	if err := scanner.Start(time.Duration(cfg.ReminderIntervalSeconds) * time.Second); err != nil {
		log.Fatalf("Failed to start reminder scanner: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		scanner.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting Almanac on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
