package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"local-chef-bazaar/internal/api/handlers"
	"local-chef-bazaar/internal/api/presenters"
	"local-chef-bazaar/internal/api/routes"
	"local-chef-bazaar/internal/middleware"
	"local-chef-bazaar/internal/utils"
	"local-chef-bazaar/pkg/favorite"
	"local-chef-bazaar/pkg/meal"
	"local-chef-bazaar/pkg/order"
	"local-chef-bazaar/pkg/review"
	"local-chef-bazaar/pkg/store"
	"local-chef-bazaar/pkg/user"
)

func NewApp(db store.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "LocalChefBazaar",
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	output, err := accessLogOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(middlewares.LoggerMiddleware(output))
	app.Use(middlewares.CORSMiddleware())
	app.Use(middlewares.LimiterMiddleware(utils.GetIntConfig("RATE_LIMIT_MAX")))

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	orderRepository := order.NewOrderRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	mealService := meal.NewMealService(mealRepository, int64(utils.GetIntConfig("MEALS_FEED_LIMIT")))
	reviewService := review.NewReviewService(reviewRepository)
	orderService := order.NewOrderService(orderRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository)

	// Handler
	generalHandler := handlers.NewGeneralHandler()
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		GeneralHandler:  generalHandler,
		UserHandler:     userHandler,
		MealHandler:     mealHandler,
		ReviewHandler:   reviewHandler,
		OrderHandler:    orderHandler,
		FavoriteHandler: favoriteHandler,
	}
	routesConfig.Setup()
	return app, nil
}

func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Errorf("error creating logs directory: %v", err)
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		log.Errorf("error opening file: %v", err)
		return nil, err
	}
	return file, nil
}
