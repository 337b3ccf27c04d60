// internals/features/holidays/controller/holiday_controller.go
package controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	dto "digikidz_backend/internals/features/holidays/dto"
	svc "digikidz_backend/internals/features/holidays/service"
	helper "digikidz_backend/internals/helpers"
)

type HolidayController struct {
	Svc *svc.HolidayService
}

func NewHolidayController(s *svc.HolidayService) *HolidayController {
	return &HolidayController{Svc: s}
}

func (ctl *HolidayController) yearQuery(c *fiber.Ctx) int {
	year := c.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}
	return year
}

// GET /api/holidays?year=
func (ctl *HolidayController) List(c *fiber.Ctx) error {
	year := ctl.yearQuery(c)
	holidays, err := ctl.Svc.Fetch(c.UserContext(), year)
	if err != nil {
		log.Printf("[Holiday.List] fetch %d error: %v", year, err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat kalender libur nasional.")
	}
	return helper.JsonOK(c, "OK", holidays)
}

// GET /api/holidays/on?date=YYYY-MM-DD — point query (bisa >1 libur per tanggal)
func (ctl *HolidayController) On(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Tanggal tidak valid (YYYY-MM-DD).")
	}

	holidays, err := ctl.Svc.Fetch(c.UserContext(), t.Year())
	if err != nil {
		log.Printf("[Holiday.On] fetch %d error: %v", t.Year(), err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat kalender libur nasional.")
	}
	return helper.JsonOK(c, "OK", svc.HolidaysOn(holidays, date))
}

// GET /api/holidays/months?year= — dua belas bucket bulan untuk daftar tahunan
func (ctl *HolidayController) Months(c *fiber.Ctx) error {
	year := ctl.yearQuery(c)
	holidays, err := ctl.Svc.Fetch(c.UserContext(), year)
	if err != nil {
		log.Printf("[Holiday.Months] fetch %d error: %v", year, err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat kalender libur nasional.")
	}

	buckets := svc.GroupByMonth(holidays)
	out := make([]dto.MonthBucketResponse, 0, 12)
	for i := 0; i < 12; i++ {
		monthHolidays := buckets[i]
		if monthHolidays == nil {
			monthHolidays = []dto.Holiday{}
		}
		out = append(out, dto.MonthBucketResponse{Month: i + 1, Holidays: monthHolidays})
	}
	return helper.JsonOK(c, "OK", out)
}
