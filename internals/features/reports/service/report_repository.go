// internals/features/reports/service/report_repository.go
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "digikidz_backend/internals/features/reports/model"
)

// ReportRepository: akses activity_reports + mirror in-memory untuk tampilan
// admin (most-recent-first). Mirror dipatch hanya setelah store sukses.
type ReportRepository struct {
	db *gorm.DB

	mu      sync.RWMutex
	reports []model.ActivityReportModel
	loaded  bool
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// List memuat semua laporan (urut tanggal descending) dan mengganti mirror.
func (r *ReportRepository) List(ctx context.Context) ([]model.ActivityReportModel, error) {
	var rows []model.ActivityReportModel
	if err := r.db.WithContext(ctx).
		Order("activity_report_date DESC").
		Find(&rows).Error; err != nil {
		return r.Snapshot(), err
	}

	r.mu.Lock()
	r.reports = rows
	r.loaded = true
	r.mu.Unlock()

	return r.Snapshot(), nil
}

// ListByStudent: filter dikerjakan di store supaya data murid lain tidak
// pernah terkirim ke client parent. Tidak menyentuh mirror admin.
func (r *ReportRepository) ListByStudent(ctx context.Context, studentName string) ([]model.ActivityReportModel, error) {
	var rows []model.ActivityReportModel
	err := r.db.WithContext(ctx).
		Where("activity_report_student_name = ?", studentName).
		Order("activity_report_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ReportRepository) EnsureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := r.List(ctx)
	return err
}

// Add menyisipkan laporan baru dan prepend ke mirror (most-recent-first).
func (r *ReportRepository) Add(ctx context.Context, m model.ActivityReportModel) (model.ActivityReportModel, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.ActivityReportModel{}, err
	}

	r.mu.Lock()
	r.reports = append([]model.ActivityReportModel{m}, r.reports...)
	r.mu.Unlock()

	return m, nil
}

// Update mengirim hanya kolom yang ada di cols, lalu patch mirror.
func (r *ReportRepository) Update(ctx context.Context, id uuid.UUID, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.ActivityReportModel{}).
		Where("activity_report_id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.refreshMirrorRow(ctx, id)
	return nil
}

// AppendMedia menambahkan URL hasil upload baru ke media_urls yang ada.
func (r *ReportRepository) AppendMedia(ctx context.Context, id uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	var existing model.ActivityReportModel
	if err := r.db.WithContext(ctx).
		First(&existing, "activity_report_id = ?", id).Error; err != nil {
		return err
	}

	merged := append(existing.ActivityReportMediaURLs, urls...)
	if err := r.db.WithContext(ctx).
		Model(&model.ActivityReportModel{}).
		Where("activity_report_id = ?", id).
		Update("activity_report_media_urls", merged).Error; err != nil {
		return err
	}

	r.refreshMirrorRow(ctx, id)
	return nil
}

// Remove menghapus satu laporan dan mengembalikan baris yang terhapus,
// supaya pemanggil bisa membersihkan lampiran OSS-nya.
func (r *ReportRepository) Remove(ctx context.Context, id uuid.UUID) (model.ActivityReportModel, error) {
	var m model.ActivityReportModel
	if err := r.db.WithContext(ctx).
		First(&m, "activity_report_id = ?", id).Error; err != nil {
		return model.ActivityReportModel{}, err
	}

	res := r.db.WithContext(ctx).
		Delete(&model.ActivityReportModel{}, "activity_report_id = ?", id)
	if res.Error != nil {
		return model.ActivityReportModel{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.ActivityReportModel{}, gorm.ErrRecordNotFound
	}

	r.mu.Lock()
	for i := range r.reports {
		if r.reports[i].ActivityReportID == id {
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return m, nil
}

func (r *ReportRepository) Snapshot() []model.ActivityReportModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ActivityReportModel, len(r.reports))
	copy(out, r.reports)
	return out
}

// refreshMirrorRow membaca ulang satu baris untuk patch mirror.
// Kalau pembacaan gagal, mirror dibiarkan stale sampai List berikutnya.
func (r *ReportRepository) refreshMirrorRow(ctx context.Context, id uuid.UUID) {
	var fresh model.ActivityReportModel
	if err := r.db.WithContext(ctx).
		First(&fresh, "activity_report_id = ?", id).Error; err != nil {
		return
	}

	r.mu.Lock()
	for i := range r.reports {
		if r.reports[i].ActivityReportID == id {
			r.reports[i] = fresh
			break
		}
	}
	r.mu.Unlock()
}

// seed dipakai test untuk mengisi mirror tanpa store.
func (r *ReportRepository) seed(reports []model.ActivityReportModel) {
	r.mu.Lock()
	r.reports = reports
	r.loaded = true
	r.mu.Unlock()
}
