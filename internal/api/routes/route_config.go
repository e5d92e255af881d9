package routes

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/internal/api/handlers"
)

type Config struct {
	App             *fiber.App
	GeneralHandler  handlers.GeneralHandler
	UserHandler     handlers.UserHandler
	MealHandler     handlers.MealHandler
	ReviewHandler   handlers.ReviewHandler
	OrderHandler    handlers.OrderHandler
	FavoriteHandler handlers.FavoriteHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.User()
	c.Meal()
	c.Review()
	c.Order()
	c.Favorite()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.GeneralHandler.Root)
	c.App.Post("/data", c.GeneralHandler.EchoData)
}

func (c *Config) User() {
	user := c.App.Group("/users")
	{
		user.Post("", c.UserHandler.CreateUser)
		user.Get("", c.UserHandler.GetUsers)
		user.Get("/:id", c.UserHandler.GetUserByID)
		user.Patch("/:id", c.UserHandler.UpdateUser)
	}
}

func (c *Config) Meal() {
	meal := c.App.Group("/meals")
	{
		meal.Post("", c.MealHandler.CreateMeal)
		meal.Get("", c.MealHandler.GetMeals)
		meal.Get("/:id", c.MealHandler.GetMealByID)
		meal.Delete("/:id", c.MealHandler.DeleteMeal)
	}
	c.App.Get("/my-meals", c.MealHandler.GetMyMeals)
}

func (c *Config) Review() {
	review := c.App.Group("/reviews")
	{
		review.Post("", c.ReviewHandler.CreateReview)
		review.Get("", c.ReviewHandler.GetReviews)
		review.Get("/:foodId", c.ReviewHandler.GetReviewsByFoodID)
		review.Put("/:id", c.ReviewHandler.UpdateReview)
		review.Delete("/:id", c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Order() {
	order := c.App.Group("/orders")
	{
		order.Post("", c.OrderHandler.CreateOrder)
		order.Get("", c.OrderHandler.GetOrders)
		order.Get("/:email", c.OrderHandler.GetOrdersByEmail)
		order.Patch("/:id", c.OrderHandler.UpdateOrderStatus)
	}
	c.App.Get("/chef-orders/:chefId", c.OrderHandler.GetChefOrders)
}

func (c *Config) Favorite() {
	favorite := c.App.Group("/favorites")
	{
		favorite.Post("", c.FavoriteHandler.CreateFavorite)
		favorite.Get("", c.FavoriteHandler.GetFavorites)
		favorite.Delete("/:id", c.FavoriteHandler.DeleteFavorite)
	}
}
