package main

import (
	"log"
	"os"

	"crm-meetings-be/internal/model"
	"crm-meetings-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo user plus a handful of contacts and leads so the meeting
// endpoints have something to link against on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding CRM demo data\n")

	color.Yellow("\n[1] Demo user")
	password := os.Getenv("SEED_USER_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}

	user := model.User{
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "User",
	}

	var existingUser model.User
	if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err == nil {
		color.Yellow("User '%s' already exists, skipping...", user.Email)
	} else if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create user: %v", err)
	} else {
		color.Green("Created user: %s", user.Email)
	}

	color.Yellow("\n[2] Contacts")
	contacts := []model.Contact{
		{FirstName: "Alice", LastName: "Morgan", Email: "alice.morgan@example.com", Phone: "+1-202-555-0114"},
		{FirstName: "Bruno", LastName: "Silva", Email: "bruno.silva@example.com", Phone: "+1-202-555-0163"},
		{FirstName: "Chloe", LastName: "Nguyen", Email: "chloe.nguyen@example.com", Phone: "+1-202-555-0191"},
	}

	for _, c := range contacts {
		var existing model.Contact
		if err := db.Where("email = ?", c.Email).First(&existing).Error; err == nil {
			color.Yellow("Contact '%s' already exists, skipping...", c.Email)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			color.Red("Failed to create contact '%s': %v", c.Email, err)
		} else {
			color.Green("Created contact: %s %s", c.FirstName, c.LastName)
		}
	}

	color.Yellow("\n[3] Leads")
	leads := []model.Lead{
		{FirstName: "Dmitri", LastName: "Ivanov", Email: "dmitri.ivanov@example.com", Phone: "+1-202-555-0127", Status: "new"},
		{FirstName: "Elena", LastName: "Rossi", Email: "elena.rossi@example.com", Phone: "+1-202-555-0148", Status: "contacted"},
	}

	for _, l := range leads {
		var existing model.Lead
		if err := db.Where("email = ?", l.Email).First(&existing).Error; err == nil {
			color.Yellow("Lead '%s' already exists, skipping...", l.Email)
			continue
		}
		if err := db.Create(&l).Error; err != nil {
			color.Red("Failed to create lead '%s': %v", l.Email, err)
		} else {
			color.Green("Created lead: %s %s", l.FirstName, l.LastName)
		}
	}

	color.Cyan("\n✅ Seeding completed")
}
