// internals/features/reports/service/access_code_repository.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "digikidz_backend/internals/features/reports/model"
)

const (
	codeLen      = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// tabrakan kode 36^6 praktis tidak terjadi; retry kecil supaya admin
	// tidak pernah melihat unique-violation dari store
	maxGenerateAttempts = 5
)

var ErrCodeExhausted = errors.New("gagal membuat kode akses unik, coba lagi")

// AccessCodeRepository: kode akses parent + mirror in-memory (urut nama murid).
type AccessCodeRepository struct {
	db *gorm.DB

	mu    sync.RWMutex
	codes []model.StudentAccessCodeModel
}

func NewAccessCodeRepository(db *gorm.DB) *AccessCodeRepository {
	return &AccessCodeRepository{db: db}
}

func (r *AccessCodeRepository) List(ctx context.Context) ([]model.StudentAccessCodeModel, error) {
	var rows []model.StudentAccessCodeModel
	if err := r.db.WithContext(ctx).
		Order("student_access_code_student_name ASC").
		Find(&rows).Error; err != nil {
		return r.Snapshot(), err
	}

	r.mu.Lock()
	r.codes = rows
	r.mu.Unlock()

	return r.Snapshot(), nil
}

// Generate membuat kode 6 karakter uppercase alfanumerik, menyimpan binding,
// dan mengembalikan row-nya. Kode yang sudah terpakai di-redraw (maks 5×).
func (r *AccessCodeRepository) Generate(ctx context.Context, studentName string) (model.StudentAccessCodeModel, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code := randomCode()

		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.StudentAccessCodeModel{}).
			Where("student_access_code_code = ?", code).
			Count(&count).Error; err != nil {
			return model.StudentAccessCodeModel{}, err
		}
		if count > 0 {
			continue
		}

		m := model.StudentAccessCodeModel{
			StudentAccessCodeStudentName: strings.TrimSpace(studentName),
			StudentAccessCodeCode:        code,
		}
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return model.StudentAccessCodeModel{}, err
		}

		r.mu.Lock()
		r.codes = append(r.codes, m)
		r.mu.Unlock()

		return m, nil
	}
	return model.StudentAccessCodeModel{}, ErrCodeExhausted
}

func (r *AccessCodeRepository) Remove(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&model.StudentAccessCodeModel{}, "student_access_code_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.mu.Lock()
	for i := range r.codes {
		if r.codes[i].StudentAccessCodeID == id {
			r.codes = append(r.codes[:i], r.codes[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

// Lookup mencari kode case-insensitive (input di-uppercase dulu).
// Hasil: (row, nil) ketemu; (nil, nil) tidak ada; (nil, err) store gagal.
// "Kode salah" dan "store error" sengaja dibedakan.
func (r *AccessCodeRepository) Lookup(ctx context.Context, code string) (*model.StudentAccessCodeModel, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}

	var m model.StudentAccessCodeModel
	err := r.db.WithContext(ctx).
		First(&m, "student_access_code_code = ?", normalized).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AccessCodeRepository) Snapshot() []model.StudentAccessCodeModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.StudentAccessCodeModel, len(r.codes))
	copy(out, r.codes)
	return out
}

func randomCode() string {
	b := make([]byte, codeLen)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
