package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"lingo-backend/internal/config"
	"lingo-backend/internal/database"
	"lingo-backend/internal/models"
	"lingo-backend/internal/storage"
	"lingo-backend/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// pngPixel is a 1x1 transparent PNG used as placeholder photo content.
var pngPixel = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
	0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	seedUsers(ctx, mongoDB.Database, s3Client)
	seedPackages(ctx, mongoDB.Database)
	seedBundles(ctx, mongoDB.Database)
	seedFAQs(ctx, mongoDB.Database)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client) {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	photoRef, err := s3Client.UploadFile(ctx, "photos", "ayesha.png", bytes.NewReader(pngPixel), "image/png")
	if err != nil {
		log.Printf("Warning: Failed to upload placeholder photo: %v", err)
	}

	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")

	now := time.Now()

	users := []interface{}{
		models.User{
			Name:        "Ayesha Rahman",
			Phone:       "+8801712345678",
			Email:       "ayesha@example.com",
			DateOfBirth: "1998-04-12",
			Address:     "Dhaka, Bangladesh",
			Gender:      "female",
			Password:    password1,
			PhotoURL:    &photoRef,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.User{
			Name:        "Tanvir Hasan",
			Phone:       "+8801898765432",
			Email:       "tanvir@example.com",
			DateOfBirth: "1995-11-03",
			Address:     "Chattogram, Bangladesh",
			Gender:      "male",
			Password:    password2,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))
}

func seedPackages(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("packages")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear packages: %v", err)
	}

	now := time.Now()

	// The container document the add-package flow pushes into. It must exist
	// before any package can be appended.
	container := models.PackageDocument{
		Packages: []models.LearningPackage{
			{
				ID:          "starter-reading",
				Name:        "Starter Reading",
				Description: "Short reading passages for beginners",
				CreatedAt:   now,
				Questions: []models.Question{
					{
						ID:      "q1",
						Type:    models.QuestionTypeReading,
						SubType: "multiple-choice",
						Text:    "Choose the correct meaning of the highlighted word.",
						Options: []string{"quick", "slow", "loud", "quiet"},
						Answer:  "quick",
					},
					{
						ID:      "q2",
						Type:    models.QuestionTypeListening,
						SubType: "audio-based",
						Text:    "Listen to the clip and pick what the speaker ordered.",
						Options: []string{"coffee", "tea", "juice"},
						Answer:  "tea",
					},
				},
			},
		},
	}

	if _, err := collection.InsertOne(ctx, container); err != nil {
		log.Fatalf("Failed to seed packages: %v", err)
	}

	log.Println("Seeded package container")
}

func seedBundles(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("bundles")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear bundles: %v", err)
	}

	bundles := []interface{}{
		models.Bundle{
			Name:         "IELTS Essentials",
			Description:  "Reading and listening practice for IELTS candidates",
			PackageIDs:   []string{"starter-reading"},
			Price:        19.99,
			Currency:     "USD",
			DurationDays: 90,
		},
		models.Bundle{
			Name:         "Full Access",
			Description:  "Every package on the platform for one year",
			PackageIDs:   []string{"starter-reading"},
			Price:        49.99,
			Currency:     "USD",
			DurationDays: 365,
		},
	}

	result, err := collection.InsertMany(ctx, bundles)
	if err != nil {
		log.Fatalf("Failed to seed bundles: %v", err)
	}

	log.Printf("Seeded %d bundles", len(result.InsertedIDs))
}

func seedFAQs(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("faqs")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear faqs: %v", err)
	}

	faqs := []interface{}{
		models.FAQ{
			Question: "How do I reset my password?",
			Answer:   "Use the update-password form on your profile page.",
			Category: "account",
			Order:    1,
		},
		models.FAQ{
			Question: "Can I retake an exam?",
			Answer:   "Yes. Every attempt is recorded in your exam history.",
			Category: "exams",
			Order:    2,
		},
		models.FAQ{
			Question: "What is included in a bundle?",
			Answer:   "A bundle groups several learning packages at a discount.",
			Category: "billing",
			Order:    3,
		},
	}

	result, err := collection.InsertMany(ctx, faqs)
	if err != nil {
		log.Fatalf("Failed to seed faqs: %v", err)
	}

	log.Printf("Seeded %d faqs", len(result.InsertedIDs))
}
