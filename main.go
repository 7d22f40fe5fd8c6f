package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/udyambridge/business-platform-go/config"
	directory "github.com/udyambridge/business-platform-go/directory"
	routes "github.com/udyambridge/business-platform-go/routes"
	session "github.com/udyambridge/business-platform-go/session"
	store "github.com/udyambridge/business-platform-go/store"
)

func main() {
	cfg := config.Load()

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open slot store: ", err)
	}

	dir := directory.New(st)
	mgr := session.NewManager(st)

	// Restore must finish before any guarded request is decided.
	if err := mgr.Restore(); err != nil {
		log.Fatal("Failed to restore session: ", err)
	}

	r := gin.Default()
	r.Use(corsMiddleware(cfg))

	routes.SetupRoutes(r, cfg, dir, mgr)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.MongoURI != "" {
		client, err := store.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		log.Println("Using mongo slot store")
		return store.NewMongoStore(client, cfg.DBName), nil
	}
	log.Printf("Using file slot store in %s", cfg.DataDir)
	return store.NewFileStore(cfg.DataDir)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "If-None-Match"},
	})
}
