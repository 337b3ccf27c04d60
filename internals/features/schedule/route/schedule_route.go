// internals/features/schedule/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "digikidz_backend/internals/features/schedule/controller"
)

// ScheduleUserRoutes: read-only untuk halaman jadwal publik
func ScheduleUserRoutes(public fiber.Router, sc *ctl.ScheduleController) {
	grp := public.Group("/schedule")
	grp.Get("/", sc.List)
	grp.Get("/cell", sc.Cell)
	grp.Get("/filter", sc.Filter)
}

// ScheduleAdminRoutes: CRUD admin (di belakang JWT)
func ScheduleAdminRoutes(admin fiber.Router, sc *ctl.ScheduleController) {
	grp := admin.Group("/schedule")
	grp.Post("/", sc.Create)
	grp.Patch("/:id", sc.Patch)
	grp.Delete("/:id", sc.Delete)
}
