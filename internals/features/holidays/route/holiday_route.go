// internals/features/holidays/route/holiday_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "digikidz_backend/internals/features/holidays/controller"
)

// HolidayRoutes: read-only publik untuk halaman kalender
func HolidayRoutes(public fiber.Router, hc *ctl.HolidayController) {
	grp := public.Group("/holidays")
	grp.Get("/", hc.List)
	grp.Get("/on", hc.On)
	grp.Get("/months", hc.Months)
}
