// internals/features/reports/controller/report_controller.go
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

	d "digikidz_backend/internals/features/reports/dto"
	svc "digikidz_backend/internals/features/reports/service"
	helper "digikidz_backend/internals/helpers"
	ossHelper "digikidz_backend/internals/helpers/oss"
)

/* =========================
   Controller & Constructor
   ========================= */

type ReportController struct {
	Repo     *svc.ReportRepository
	OSS      *ossHelper.OSSService // nil kalau env OSS belum diset
	Validate *validator.Validate
}

func NewReportController(repo *svc.ReportRepository, oss *ossHelper.OSSService, v *validator.Validate) *ReportController {
	return &ReportController{Repo: repo, OSS: oss, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= List (admin) ========================= */

// GET /api/a/reports?student_name=&q=&coach=
// student_name → filter di store (tanpa menyentuh mirror);
// q/coach → filter murni di atas mirror.
func (ctl *ReportController) List(c *fiber.Ctx) error {
	if student := strings.TrimSpace(c.Query("student_name")); student != "" {
		rows, err := ctl.Repo.ListByStudent(c.UserContext(), student)
		if err != nil {
			log.Printf("[Report.List] by-student error: %v", err)
			return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat laporan.")
		}
		return helper.JsonOK(c, "OK", d.FromReportModels(rows))
	}

	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[Report.List] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat laporan.")
	}

	search := c.Query("q")
	coach := strings.TrimSpace(c.Query("coach", svc.FilterAll))
	if search != "" || coach != svc.FilterAll {
		rows = svc.FilterReports(rows, search, coach)
	}
	return helper.JsonOK(c, "OK", d.FromReportModels(rows))
}

/* ========================= Grouped (admin) ========================= */

// GET /api/a/reports/grouped — per murid, level 16-mingguan (paruh 8 minggu)
func (ctl *ReportController) Grouped(c *fiber.Ctx) error {
	if err := ctl.Repo.EnsureLoaded(c.UserContext()); err != nil {
		log.Printf("[Report.Grouped] load error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal memuat laporan.")
	}

	grouped, names := svc.GroupByStudent(ctl.Repo.Snapshot())
	out := make([]d.StudentLevelsResponse, 0, len(names))
	for _, name := range names {
		out = append(out, d.StudentLevelsResponse{
			StudentName: name,
			Levels:      toLevelBucketResponses(svc.BuildStudentLevels(grouped[name])),
		})
	}
	return helper.JsonOK(c, "OK", out)
}

func toLevelBucketResponses(buckets []svc.LevelBucket) []d.LevelBucketResponse {
	out := make([]d.LevelBucketResponse, 0, len(buckets))
	for i := range buckets {
		out = append(out, d.LevelBucketResponse{
			Level:     buckets[i].Level,
			WeekStart: buckets[i].WeekStart,
			WeekEnd:   buckets[i].WeekEnd,
			HalfA:     d.FromReportModels(buckets[i].HalfA),
			HalfB:     d.FromReportModels(buckets[i].HalfB),
		})
	}
	return out
}

/* ========================= Create ========================= */

// POST /api/a/reports — JSON atau multipart. Untuk multipart, lampiran
// diunggah dulu satu per satu; upload yang gagal cukup dilewati (URL-nya
// tidak masuk list), sisanya tetap tersimpan.
func (ctl *ReportController) Create(c *fiber.Ctx) error {
	var req d.ActivityReportCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Report.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	// validasi dulu — kalau field wajib kosong, tidak ada I/O sama sekali
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	m.ActivityReportMediaURLs = append(m.ActivityReportMediaURLs, ctl.uploadFormMedia(c)...)

	created, err := ctl.Repo.Add(c.UserContext(), m)
	if err != nil {
		log.Printf("[Report.Create] DB.Create error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal menambahkan laporan.")
	}
	return helper.JsonCreated(c,
		fmt.Sprintf("Laporan untuk %s berhasil ditambahkan.", created.ActivityReportStudentName),
		d.FromReportModel(created))
}

// uploadFormMedia: unggah semua lampiran multipart (kalau ada) dan kembalikan
// URL yang sukses. Gagal per-file hanya dicatat di log.
func (ctl *ReportController) uploadFormMedia(c *fiber.Ctx) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := ossHelper.CollectUploadFiles(form)
	if len(files) == 0 {
		return nil
	}
	if ctl.OSS == nil {
		log.Printf("[Report.uploadFormMedia] OSS belum dikonfigurasi, %d lampiran dilewati", len(files))
		return nil
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, uerr := ctl.OSS.UploadReportMedia(c.UserContext(), fh)
		if uerr != nil {
			log.Printf("[Report.uploadFormMedia] upload %s gagal: %v", fh.Filename, uerr)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

/* ========================= Patch ========================= */

// PATCH /api/a/reports/:id — partial update; lampiran multipart baru
// di-APPEND ke media_urls yang ada.
func (ctl *ReportController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID tidak valid.")
	}

	var req d.ActivityReportUpdateRequest
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
	if req.MediaURLs != nil {
		cols["activity_report_media_urls"] = *req.MediaURLs
	}

	if len(cols) > 0 {
		if err := ctl.Repo.Update(c.UserContext(), id, cols); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "Laporan tidak ditemukan.")
			}
			log.Printf("[Report.Patch] error: %v", err)
			return helper.JsonError(c, http.StatusBadGateway, "Gagal memperbarui laporan.")
		}
	}

	if uploaded := ctl.uploadFormMedia(c); len(uploaded) > 0 {
		if err := ctl.Repo.AppendMedia(c.UserContext(), id, uploaded); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "Laporan tidak ditemukan.")
			}
			log.Printf("[Report.Patch] append media error: %v", err)
			return helper.JsonError(c, http.StatusBadGateway, "Gagal menyimpan lampiran.")
		}
	}

	return helper.JsonOK(c, "Laporan berhasil diperbarui.", nil)
}

/* ========================= Delete ========================= */

func (ctl *ReportController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID tidak valid.")
	}

	removed, err := ctl.Repo.Remove(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Laporan tidak ditemukan.")
		}
		log.Printf("[Report.Delete] error: %v", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal menghapus laporan.")
	}

	ctl.cleanupMedia(c, removed.ActivityReportMediaURLs)
	return helper.JsonOK(c, "Laporan berhasil dihapus.", nil)
}

// cleanupMedia: hapus objek lampiran di OSS setelah laporannya hilang.
// Best-effort — kegagalan hanya dicatat, laporan sudah terlanjur terhapus.
func (ctl *ReportController) cleanupMedia(c *fiber.Ctx, urls []string) {
	if ctl.OSS == nil || len(urls) == 0 {
		return
	}
	for _, u := range urls {
		key := ctl.OSS.KeyFromPublicURL(u)
		if key == "" {
			continue
		}
		if derr := ctl.OSS.DeleteObject(c.UserContext(), key); derr != nil {
			log.Printf("[Report.Delete] hapus media %s gagal: %v", key, derr)
		}
	}
}
