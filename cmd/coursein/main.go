package main

import (
	"log"

	"github.com/binar-final-project-kelompok7/course-in/internal/app"
	"github.com/binar-final-project-kelompok7/course-in/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
