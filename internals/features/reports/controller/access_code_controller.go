// internals/features/reports/controller/access_code_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "digikidz_backend/internals/features/reports/dto"
	svc "digikidz_backend/internals/features/reports/service"
	helper "digikidz_backend/internals/helpers"
)

type AccessCodeController struct {
	Repo     *svc.AccessCodeRepository
	Validate *validator.Validate
}

func NewAccessCodeController(repo *svc.AccessCodeRepository, v *validator.Validate) *AccessCodeController {
	return &AccessCodeController{Repo: repo, Validate: v}
}

// GET /api/a/access-codes — urut nama murid ascending
func (ctl *AccessCodeController) List(c *fiber.Ctx) error {
	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[AccessCode.List] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat kode akses.")
	}
	return helper.JsonOK(c, "OK", d.FromAccessCodeModels(rows))
}

// POST /api/a/access-codes — generate kode untuk satu murid
func (ctl *AccessCodeController) Generate(c *fiber.Ctx) error {
	var req d.AccessCodeGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Repo.Generate(c.UserContext(), req.StudentName)
	if err != nil {
		log.Printf("[AccessCode.Generate] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal membuat kode akses.")
	}
	return helper.JsonCreated(c,
		fmt.Sprintf("Kode akses untuk %s: %s", m.StudentAccessCodeStudentName, m.StudentAccessCodeCode),
		d.FromAccessCodeModel(m))
}

// DELETE /api/a/access-codes/:id
func (ctl *AccessCodeController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID tidak valid.")
	}

	if err := ctl.Repo.Remove(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Kode akses tidak ditemukan.")
		}
		log.Printf("[AccessCode.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal menghapus kode akses.")
	}
	return helper.JsonOK(c, "Kode akses berhasil dihapus.", nil)
}
