package database

import (
	"log"

	"tdiapi/models"

	"gorm.io/gorm"
)

// Seed inserts the initial user when the user table is empty.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if count > 0 {
		return
	}

	user := models.User{
		Name:     "Josué",
		Email:    "josueaosilverio@ua.pt",
		Password: "testes",
	}
	if err := user.HashPassword(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	log.Println("Database seeded successfully")
}
