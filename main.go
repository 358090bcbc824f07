package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/api"
	"os-scheduler/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app := fiber.New()
	api.Register(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
