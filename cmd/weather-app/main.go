package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	_ "weather-app/configs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/picker"
	"weather-app/internal/domain/usecase/session"
	"weather-app/internal/domain/usecase/view"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	redisClient := redis.NewClient(&redis.Config{
		Host:         resource.GetString("app.redis.host"),
		Port:         resource.GetInt("app.redis.port"),
		Password:     resource.GetString("app.redis.password"),
		Database:     resource.GetInt("app.redis.database"),
		MinIdleConns: 1,
		MaxIdleConns: 10,
		MaxActive:    50,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	})
	defer redisClient.Close()

	// Init Gateways
	locationStore := store.NewRedisLocationStore(
		redisClient,
		resource.GetString("app.storage.locations-key"),
		resource.GetString("app.storage.current-key"),
	)
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		http.ClientOptions{},
	)

	// Init UseCases
	sess := session.NewSession(locationStore, model.Location{
		Name:    resource.GetString("app.default-location.name"),
		Lat:     resource.GetFloat64("app.default-location.lat"),
		Lon:     resource.GetFloat64("app.default-location.lon"),
		Country: resource.GetString("app.default-location.country"),
		State:   resource.GetString("app.default-location.state"),
	})
	refresher := view.NewRefresher()
	viewUseCase := weather.NewViewUseCase(sess, weatherGateway, refresher)
	mapPicker := picker.NewPicker(sess, weatherGateway)
	healthUseCase := health.NewHealthUseCase(locationStore)

	// Init Controllers
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, viewUseCase)
	locationController := controller.NewLocationController(apiGroup, sess, weatherGateway, resource.GetInt("app.weather.search-limit"))
	mapController := controller.NewMapController(apiGroup, mapPicker, viewUseCase)
	settingsController := controller.NewSettingsController(apiGroup, sess)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	locationController.InitLocationRoutes()
	mapController.InitMapRoutes()
	settingsController.InitSettingsRoutes()

	// Activate the session: seeds the default location on first run and kicks
	// the initial view refresh through the session listeners.
	sess.Initialize(context.Background())

	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil {
			log.Infof("Server stopped: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("app.stopping"))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
}
