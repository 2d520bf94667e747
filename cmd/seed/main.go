package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"societyhub/internal/database"
	"societyhub/internal/domain"
)

// Seeds a fresh database with demo accounts, amenities and bills.
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

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		return string(h)
	}

	users := []domain.User{
		{Name: "Asha Rao", PhoneNumber: "9000000001", PasswordHash: hash("password123"), Role: domain.RoleResident, Unit: "A-101"},
		{Name: "Vikram Shetty", PhoneNumber: "9000000002", PasswordHash: hash("password123"), Role: domain.RoleResident, Unit: "B-204"},
		{Name: "Gate One", PhoneNumber: "9000000003", PasswordHash: hash("password123"), Role: domain.RoleSecurity, EmployeeID: "SEC-01"},
		{Name: "Society Admin", PhoneNumber: "9000000004", PasswordHash: hash("password123"), Role: domain.RoleAdmin},
	}
	for i := range users {
		var existing domain.User
		err := db.Where("phone_number = ?", users[i].PhoneNumber).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("seed user %s: %v", users[i].Name, err)
		}
	}

	amenities := []domain.Amenity{
		{Name: "Clubhouse", Description: "Party hall with seating for 60", MaxCapacity: 60, BookingDuration: 120},
		{Name: "Tennis Court", Description: "Outdoor synthetic court", MaxCapacity: 4, BookingDuration: 60},
		{Name: "Swimming Pool", Description: "25m pool, lanes 1-4", MaxCapacity: 20, BookingDuration: 60},
		{Name: "Gym", Description: "Cardio and free weights", MaxCapacity: 15, BookingDuration: 90},
	}
	for i := range amenities {
		var existing domain.Amenity
		err := db.Where("name = ?", amenities[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&amenities[i]).Error; err != nil {
			log.Fatalf("seed amenity %s: %v", amenities[i].Name, err)
		}
	}

	var resident domain.User
	if err := db.Where("phone_number = ?", "9000000001").First(&resident).Error; err == nil {
		var count int64
		db.Model(&domain.Bill{}).Where("user_id = ?", resident.ID).Count(&count)
		if count == 0 {
			bills := []domain.Bill{
				{UserID: resident.ID, Description: "Maintenance June", Amount: 3500, DueDate: time.Now().Add(5 * 24 * time.Hour), Status: domain.BillPending},
				{UserID: resident.ID, Description: "Water charges", Amount: 600, DueDate: time.Now().Add(20 * 24 * time.Hour), Status: domain.BillUpcoming},
			}
			for i := range bills {
				if err := db.Create(&bills[i]).Error; err != nil {
					log.Fatalf("seed bill: %v", err)
				}
			}
		}
	}

	log.Println("Seed complete")
}
