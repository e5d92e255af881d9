package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		LoggerMiddleware(output io.Writer) fiber.Handler
		LimiterMiddleware(max int) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

// CORSMiddleware allows every origin; the API has no credentials to protect.
func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

func (m *middleware) LoggerMiddleware(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     output,
	})
}

// LimiterMiddleware caps each client at max requests per second. A
// non-positive max disables limiting.
func (m *middleware) LimiterMiddleware(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "too many requests"})
		},
	})
}
