package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"leiriarte-backend/internal/config"
	"leiriarte-backend/internal/database"
	"leiriarte-backend/internal/routes"
	"leiriarte-backend/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	// A failed connection does not abort startup: the service keeps
	// serving with reads degraded to empty results and writes failing,
	// and /test reports the state.
	var db *mongo.Database
	if cfg.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, starting without a database")
	} else {
		client, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Println("⚠️ Could not connect to MongoDB:", err)
		} else {
			db = client.Database(cfg.DatabaseName)
			log.Println("✅ Connected to MongoDB database", cfg.DatabaseName)
		}
	}

	st := store.NewMongoStore(db)

	router := gin.Default()
	routes.RegisterRoutes(router, st, st, cfg)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
