// internals/features/reports/controller/parent_controller.go
package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "digikidz_backend/internals/features/reports/dto"
	svc "digikidz_backend/internals/features/reports/service"
	helper "digikidz_backend/internals/helpers"
)

// ParentController: portal parent — tanpa login, hanya kode akses.
type ParentController struct {
	Codes      *svc.AccessCodeRepository
	ReportRepo *svc.ReportRepository
	Validate   *validator.Validate
}

func NewParentController(codes *svc.AccessCodeRepository, reports *svc.ReportRepository, v *validator.Validate) *ParentController {
	return &ParentController{Codes: codes, ReportRepo: reports, Validate: v}
}

// POST /api/parent/lookup — {accessCode} → {studentName, accessCode}.
// "Kode salah" (404) dan "store gagal" (502) dibedakan.
func (ctl *ParentController) Lookup(c *fiber.Ctx) error {
	var req d.AccessCodeLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Codes.Lookup(c.UserContext(), req.AccessCode)
	if err != nil {
		log.Printf("[Parent.Lookup] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memeriksa kode akses. Coba lagi.")
	}
	if m == nil {
		return helper.JsonError(c, http.StatusNotFound, "Kode akses tidak ditemukan. Silakan hubungi coach.")
	}
	return helper.JsonOK(c, "OK", d.ToLookupResponse(*m))
}

// GET /api/parent/reports?code=[&grouped=1] — laporan milik murid pemegang
// kode saja; filter dijalankan di store supaya data murid lain tidak pernah
// sampai ke client.
func (ctl *ParentController) Reports(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		return helper.JsonError(c, http.StatusBadRequest, "Kode akses wajib diisi.")
	}

	m, err := ctl.Codes.Lookup(c.UserContext(), code)
	if err != nil {
		log.Printf("[Parent.Reports] lookup error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memeriksa kode akses. Coba lagi.")
	}
	if m == nil {
		return helper.JsonError(c, http.StatusNotFound, "Kode akses tidak ditemukan. Silakan hubungi coach.")
	}

	rows, err := ctl.ReportRepo.ListByStudent(c.UserContext(), m.StudentAccessCodeStudentName)
	if err != nil {
		log.Printf("[Parent.Reports] list error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat laporan.")
	}

	if c.QueryBool("grouped") {
		return helper.JsonOK(c, "OK", d.StudentLevelsResponse{
			StudentName: m.StudentAccessCodeStudentName,
			Levels:      toLevelBucketResponses(svc.BuildStudentLevels(rows)),
		})
	}
	return helper.JsonOK(c, "OK", d.FromReportModels(rows))
}
