// internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "digikidz_backend/internals/features/auth/controller"
	"digikidz_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, ac *ctl.AuthController) {
	grp := api.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
}
