package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config from .env
const (
	// PostgreSQL
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = ""
	DB_NAME     = "blog"

	// NATS
	NATS_URL    = "nats://localhost:4222"
	STREAM_NAME = "BLOG_EVENTS"
)

func main() {
	fmt.Println("============================================")
	fmt.Println("  Blog API - Clear All Data (dev only)")
	fmt.Println("============================================")
	fmt.Println()

	clearPostgreSQL()
	clearNATS()

	fmt.Println()
	fmt.Println("Done.")
}

func clearPostgreSQL() {
	fmt.Println("--- PostgreSQL ---")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// ลำดับสำคัญ: join tables และ child rows ก่อน
	tables := []string{
		"notifications",
		"comment_likes",
		"article_likes",
		"comments",
		"article_categories",
		"articles",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			fmt.Printf("  skip %s: %v\n", table, err)
			continue
		}
		fmt.Printf("  cleared %s\n", table)
	}
}

func clearNATS() {
	fmt.Println("--- NATS JetStream ---")

	nc, err := nats.Connect(NATS_URL)
	if err != nil {
		fmt.Println("  skip: cannot connect to NATS:", err)
		return
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		fmt.Println("  skip: jetstream init failed:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := js.DeleteStream(ctx, STREAM_NAME); err != nil {
		fmt.Println("  skip: delete stream failed:", err)
		os.Exit(0)
	}
	fmt.Printf("  deleted stream %s\n", STREAM_NAME)
}
