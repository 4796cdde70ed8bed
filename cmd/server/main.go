package main

import (
	"fmt"
	"log"
	"net/http"

	"gamerack/backend/internal/config"
	"gamerack/backend/internal/database"
	"gamerack/backend/internal/graph"
	"gamerack/backend/internal/middleware"
	"gamerack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	root := &graph.Resolver{
		UserSvc:   service.NewUserService(db),
		GameSvc:   service.NewGameService(db),
		ReviewSvc: service.NewReviewService(db),
	}

	gqlHandler, err := graph.NewHandler(root)
	if err != nil {
		log.Fatalf("Failed to parse GraphQL schema: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.POST("/graphql", gin.WrapH(gqlHandler))

	fmt.Printf("Server is running on %s\n", cfg.ServerAddress)
	fmt.Println("GraphQL endpoint is available at /graphql")
	log.Fatal(router.Run(cfg.ServerAddress))
}
