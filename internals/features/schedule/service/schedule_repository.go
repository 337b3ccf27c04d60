// internals/features/schedule/service/schedule_repository.go
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "digikidz_backend/internals/features/schedule/model"
)

// ScheduleRepository memuat jadwal dari store dan memelihara mirror in-memory.
// Mirror hanya dipatch SETELAH operasi store sukses; kalau gagal, mirror tetap
// pada nilai sebelumnya. Mirror adalah cache, bukan source of truth.
type ScheduleRepository struct {
	db *gorm.DB

	mu      sync.RWMutex
	entries []model.ScheduleEntryModel
	loaded  bool
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List memuat semua entri, urut slot waktu ascending, dan mengganti mirror.
// Saat gagal, mirror lama dikembalikan bersama error.
func (r *ScheduleRepository) List(ctx context.Context) ([]model.ScheduleEntryModel, error) {
	var rows []model.ScheduleEntryModel
	if err := r.db.WithContext(ctx).
		Order("schedule_entry_time ASC").
		Find(&rows).Error; err != nil {
		return r.Snapshot(), err
	}

	r.mu.Lock()
	r.entries = rows
	r.loaded = true
	r.mu.Unlock()

	return r.Snapshot(), nil
}

// EnsureLoaded memuat mirror sekali kalau belum pernah sukses load.
func (r *ScheduleRepository) EnsureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := r.List(ctx)
	return err
}

func (r *ScheduleRepository) Add(ctx context.Context, m model.ScheduleEntryModel) (model.ScheduleEntryModel, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.ScheduleEntryModel{}, err
	}

	r.mu.Lock()
	r.entries = append(r.entries, m)
	r.mu.Unlock()

	return m, nil
}

// Update mengirim hanya kolom yang ada di cols (partial update),
// lalu membaca ulang baris itu untuk mem-patch mirror.
func (r *ScheduleRepository) Update(ctx context.Context, id uuid.UUID, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.ScheduleEntryModel{}).
		Where("schedule_entry_id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var fresh model.ScheduleEntryModel
	if err := r.db.WithContext(ctx).
		First(&fresh, "schedule_entry_id = ?", id).Error; err != nil {
		// store sudah berubah; mirror menjadi stale sampai List berikutnya
		return nil
	}

	r.mu.Lock()
	for i := range r.entries {
		if r.entries[i].ScheduleEntryID == id {
			r.entries[i] = fresh
			break
		}
	}
	r.mu.Unlock()
	return nil
}

func (r *ScheduleRepository) Remove(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&model.ScheduleEntryModel{}, "schedule_entry_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.mu.Lock()
	for i := range r.entries {
		if r.entries[i].ScheduleEntryID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

// EntriesFor: lookup sel (hari, slot) murni dari mirror — tanpa I/O.
// Urutan relatif mirror dipertahankan.
func (r *ScheduleRepository) EntriesFor(day, timeSlot string) []model.ScheduleEntryModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ScheduleEntryModel, 0, 4)
	for i := range r.entries {
		if r.entries[i].ScheduleEntryDay == day && r.entries[i].ScheduleEntryTime == timeSlot {
			out = append(out, r.entries[i])
		}
	}
	return out
}

// Snapshot mengembalikan salinan mirror (slice internal tidak pernah bocor).
func (r *ScheduleRepository) Snapshot() []model.ScheduleEntryModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ScheduleEntryModel, len(r.entries))
	copy(out, r.entries)
	return out
}

// seed dipakai test untuk mengisi mirror tanpa store.
func (r *ScheduleRepository) seed(entries []model.ScheduleEntryModel) {
	r.mu.Lock()
	r.entries = entries
	r.loaded = true
	r.mu.Unlock()
}
