// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"digikidz_backend/internals/configs"
	authCtl "digikidz_backend/internals/features/auth/controller"
	authRoute "digikidz_backend/internals/features/auth/route"
	holidayCtl "digikidz_backend/internals/features/holidays/controller"
	holidayRoute "digikidz_backend/internals/features/holidays/route"
	holidaySvc "digikidz_backend/internals/features/holidays/service"
	reportCtl "digikidz_backend/internals/features/reports/controller"
	reportRoute "digikidz_backend/internals/features/reports/route"
	reportSvc "digikidz_backend/internals/features/reports/service"
	scheduleCtl "digikidz_backend/internals/features/schedule/controller"
	scheduleRoute "digikidz_backend/internals/features/schedule/route"
	scheduleSvc "digikidz_backend/internals/features/schedule/service"
	ossHelper "digikidz_backend/internals/helpers/oss"
	"digikidz_backend/internals/middlewares"
)

// SetupRoutes merakit repository, controller, dan route group.
// Store handle (db, oss) dibuat sekali di sini dan di-inject eksplisit —
// tidak ada singleton ambient di layer feature.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	// OSS opsional: kalau env belum diset, upload media gagal saat dipanggil
	ossSvc, err := ossHelper.NewOSSServiceFromEnv("report-media")
	if err != nil {
		log.Printf("⚠️ OSS tidak aktif: %v", err)
		ossSvc = nil
	}

	scheduleRepo := scheduleSvc.NewScheduleRepository(db)
	reportRepo := reportSvc.NewReportRepository(db)
	codeRepo := reportSvc.NewAccessCodeRepository(db)
	holidaySrv := holidaySvc.NewHolidayService(configs.NagerBaseURL)

	sc := scheduleCtl.New(scheduleRepo, v)
	rc := reportCtl.NewReportController(reportRepo, ossSvc, v)
	ac := reportCtl.NewAccessCodeController(codeRepo, v)
	pc := reportCtl.NewParentController(codeRepo, reportRepo, v)
	hc := holidayCtl.NewHolidayController(holidaySrv)
	auc := authCtl.NewAuthController(v)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, auc)
	scheduleRoute.ScheduleUserRoutes(public, sc)
	holidayRoute.HolidayRoutes(public, hc)
	reportRoute.ParentRoutes(public, pc)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a",
		middlewares.AuthAdminJWT(middlewares.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	scheduleRoute.ScheduleAdminRoutes(admin, sc)
	reportRoute.ReportAdminRoutes(admin, rc, ac)

	// SPA routes (/, /kalender, /reports, /parent) dilayani FE; API yang
	// tidak dikenal → 404 JSON
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    fiber.StatusNotFound,
			"status":  "error",
			"message": "Halaman tidak ditemukan.",
		})
	})
}
