package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"societyhub/internal/database"
	"societyhub/internal/domain"
	"societyhub/internal/events"
	"societyhub/internal/jobs"
	"societyhub/internal/middleware"
	"societyhub/internal/modules/announcement"
	"societyhub/internal/modules/auth"
	"societyhub/internal/modules/bill"
	"societyhub/internal/modules/booking"
	"societyhub/internal/modules/complaint"
	"societyhub/internal/modules/notification"
	"societyhub/internal/modules/vehicle"
	"societyhub/internal/modules/visitor"
	"societyhub/internal/pkg/jwt"
	"societyhub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "societyhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Amenity{},
		&domain.Booking{},
		&domain.Visitor{},
		&domain.Bill{},
		&domain.Complaint{},
		&domain.Vehicle{},
		&domain.Announcement{},
		&domain.Poll{},
		&domain.PollOption{},
		&domain.PollVote{},
		&domain.Notification{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Println("JWT_SECRET not set, using insecure default")
	}
	jwtService := jwt.New(secret, time.Hour)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	billRepo := repository.NewBillRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Real-time hub
	hub := events.NewHub()
	wsHandler := events.NewWSHandler(hub, jwtService)

	// Services
	authService := auth.NewService(userRepo, jwtService)
	bookingService := booking.NewService(amenityRepo, bookingRepo, userRepo, hub)
	visitorService := visitor.NewService(visitorRepo, userRepo)
	billService := bill.NewService(billRepo, notificationRepo, hub)
	complaintService := complaint.NewService(complaintRepo, userRepo, notificationRepo, hub)
	vehicleService := vehicle.NewService(vehicleRepo)
	announcementService := announcement.NewService(announcementRepo, userRepo, hub)
	notificationService := notification.NewService(notificationRepo)

	// Background jobs
	runner := jobs.NewRunner(billRepo, bookingRepo, notificationRepo, hub)
	if err := runner.Start(); err != nil {
		log.Fatalf("starting jobs failed: %v", err)
	}
	defer runner.Stop()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api")

	auth.NewHandler(authService).RegisterRoutes(api.Group("/auth"))

	authed := api.Group("", middleware.Auth(jwtService))
	booking.NewHandler(bookingService).RegisterRoutes(authed)
	visitor.NewHandler(visitorService).RegisterRoutes(authed.Group("/visitors"))
	bill.NewHandler(billService).RegisterRoutes(authed.Group("/bills"))
	complaint.NewHandler(complaintService).RegisterRoutes(authed.Group("/complaints"))
	vehicle.NewHandler(vehicleService).RegisterRoutes(authed.Group("/vehicles"))
	announcement.NewHandler(announcementService).RegisterRoutes(authed.Group("/announcements"))
	notification.NewHandler(notificationService).RegisterRoutes(authed.Group("/notifications"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
