// entry point to app :)
package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"room-booking-frontend/config"
	"room-booking-frontend/internal/appServer"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found, continuing with environment variables")
	}

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	appServer.NewServer(cfg)
}
