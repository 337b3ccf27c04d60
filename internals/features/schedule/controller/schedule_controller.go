// internals/features/schedule/controller/schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"digikidz_backend/internals/constants"
	d "digikidz_backend/internals/features/schedule/dto"
	svc "digikidz_backend/internals/features/schedule/service"
	helper "digikidz_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	Repo     *svc.ScheduleRepository
	Validate *validator.Validate
}

func New(repo *svc.ScheduleRepository, v *validator.Validate) *ScheduleController {
	return &ScheduleController{Repo: repo, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= List ========================= */

// GET /api/schedule — refresh dari store, urut slot waktu ascending
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[Schedule.List] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat jadwal dari database.")
	}
	return helper.JsonOK(c, "OK", d.FromModels(rows))
}

/* ========================= Cell lookup ========================= */

// GET /api/schedule/cell?day=&time= — baca mirror, tanpa I/O ke store
// (kecuali mirror belum pernah sukses dimuat)
func (ctl *ScheduleController) Cell(c *fiber.Ctx) error {
	day := strings.TrimSpace(c.Query("day"))
	timeSlot := strings.TrimSpace(c.Query("time"))
	if !constants.IsValidDay(day) {
		return helper.JsonError(c, http.StatusBadRequest, "Hari tidak valid (senin..minggu).")
	}
	if !constants.IsValidTimeSlot(timeSlot) {
		return helper.JsonError(c, http.StatusBadRequest, "Slot waktu tidak dikenal.")
	}

	if err := ctl.Repo.EnsureLoaded(c.UserContext()); err != nil {
		log.Printf("[Schedule.Cell] load error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat jadwal dari database.")
	}

	return helper.JsonOK(c, "OK", d.FromModels(ctl.Repo.EntriesFor(day, timeSlot)))
}

/* ========================= Filter ========================= */

// GET /api/schedule/filter?coach=&level= — facet filter di atas mirror
func (ctl *ScheduleController) Filter(c *fiber.Ctx) error {
	coach := strings.TrimSpace(c.Query("coach", svc.FilterAll))
	level := strings.TrimSpace(c.Query("level", svc.FilterAll))

	if err := ctl.Repo.EnsureLoaded(c.UserContext()); err != nil {
		log.Printf("[Schedule.Filter] load error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat jadwal dari database.")
	}

	filtered := svc.FilterEntries(ctl.Repo.Snapshot(), coach, level)
	return helper.JsonOK(c, "OK", d.FromModels(filtered))
}

/* ========================= Create ========================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req d.ScheduleEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Schedule.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	created, err := ctl.Repo.Add(c.UserContext(), m)
	if err != nil {
		log.Printf("[Schedule.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal menambahkan jadwal.")
	}
	return helper.JsonCreated(c, "Jadwal berhasil ditambahkan.", d.FromModel(created))
}

/* ========================= Patch ========================= */

func (ctl *ScheduleController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID tidak valid.")
	}

	var req d.ScheduleEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cols, err := req.ToUpdates()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.Repo.Update(c.UserContext(), id, cols); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan.")
		}
		log.Printf("[Schedule.Patch] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memperbarui jadwal.")
	}
	return helper.JsonOK(c, "Jadwal berhasil diperbarui.", nil)
}

/* ========================= Delete ========================= */

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID tidak valid.")
	}

	if err := ctl.Repo.Remove(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan.")
		}
		log.Printf("[Schedule.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal menghapus jadwal.")
	}
	return helper.JsonOK(c, "Jadwal berhasil dihapus.", nil)
}
