package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mazeforge/world-api/api"
	api_i "github.com/mazeforge/world-api/api/i"
	mazeapi "github.com/mazeforge/world-api/api/maze"
	"github.com/mazeforge/world-api/config"
	"github.com/mazeforge/world-api/service"
	"github.com/mazeforge/world-api/service/i"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Logger
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func initLogger() {
	appLogger = logrus.New()
	appLogger.SetOutput(os.Stdout)
	appLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	level, err := logrus.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	appLogger.SetLevel(level)
}

func initMazeGenerator() {
	var err error
	mazeGenerator, err = service.NewMazeService(appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze generation service initialized")
}

func initMazeController() {
	defaults := mazeapi.Defaults{
		Width:      config.Envs.MazeWidth,
		Height:     config.Envs.MazeHeight,
		CellSize:   config.Envs.CellSize,
		HazardProb: config.Envs.HazardProb,
		PickupProb: config.Envs.PickupProb,
	}

	var err error
	mazeController, err = mazeapi.NewController(mazeGenerator, defaults)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)

	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})

	appLogger.Info("Router initialized")
}

func main() {
	initLogger()
	initMazeGenerator()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Running router: %v", err))
		os.Exit(1)
	}
}
