// internals/features/reports/route/reports_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctl "digikidz_backend/internals/features/reports/controller"
	"digikidz_backend/internals/middlewares"
)

// ReportAdminRoutes: CRUD laporan + kode akses (di belakang JWT)
func ReportAdminRoutes(admin fiber.Router, rc *ctl.ReportController, ac *ctl.AccessCodeController) {
	reports := admin.Group("/reports")
	reports.Get("/", rc.List)
	reports.Get("/grouped", rc.Grouped)
	reports.Post("/", rc.Create)
	reports.Patch("/:id", rc.Patch)
	reports.Delete("/:id", rc.Delete)

	codes := admin.Group("/access-codes")
	codes.Get("/", ac.List)
	codes.Post("/", ac.Generate)
	codes.Delete("/:id", ac.Delete)
}

// ParentRoutes: portal parent publik, rate-limited (brute-force guard)
func ParentRoutes(public fiber.Router, pc *ctl.ParentController) {
	grp := public.Group("/parent", middlewares.ParentLookupRateLimiter())
	grp.Post("/lookup", pc.Lookup)
	grp.Get("/reports", pc.Reports)
}
