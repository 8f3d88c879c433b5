package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"monevpdb_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk seluruh aplikasi.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
