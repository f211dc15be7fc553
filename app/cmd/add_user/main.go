package main

import (
	"fmt"
	"os"

	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

func main() {
	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@hostelfinder.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe@123"
	}

	// Create admin user
	user := &models.User{
		FullName: "System Administrator",
		Email:    email,
		Password: password,
	}

	err := database.CreateUser(db, user, models.RoleAdmin)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Admin user created successfully: %s (%s)\n", user.FullName, user.Email)
}
