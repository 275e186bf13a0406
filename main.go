package main

import (
	"fmt"
	"log"

	"github.com/g-anupam/next-delivery/configs"
	"github.com/g-anupam/next-delivery/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
