package main

import (
	"flag"
	"log"

	"lexilearn_backend/internal/app"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/pkg/configwatcher"
	"lexilearn_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding config.yaml")
	watch := flag.Bool("watch-config", false, "reload config.yaml on change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configPath, application.ApplyConfig)
	}

	application.Run()
}
