// internals/features/schedule/dto/schedule_entry_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"digikidz_backend/internals/constants"
	model "digikidz_backend/internals/features/schedule/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

var (
	ErrInvalidCoach    = errors.New("coach tidak dikenal")
	ErrInvalidLevel    = errors.New("level tidak dikenal")
	ErrInvalidDay      = errors.New("hari tidak valid (senin..minggu)")
	ErrInvalidTimeSlot = errors.New("slot waktu tidak dikenal")
)

// ---------- CREATE ----------
type ScheduleEntryCreateRequest struct {
	StudentName string  `json:"studentName" validate:"required,max=120"`
	Coach       string  `json:"coach"       validate:"required"`
	Level       string  `json:"level"       validate:"required"`
	Day         string  `json:"day"         validate:"required"`
	Time        string  `json:"time"        validate:"required"`
	Notes       *string `json:"notes"       validate:"omitempty,max=500"`
}

// ToModel: app shape → storage shape. Total, semua field dieksplisitkan.
// String kosong pada Notes dipetakan ke NULL hanya di boundary ini.
func (r ScheduleEntryCreateRequest) ToModel() (model.ScheduleEntryModel, error) {
	if !constants.IsValidCoach(r.Coach) {
		return model.ScheduleEntryModel{}, ErrInvalidCoach
	}
	if !constants.IsValidLevel(r.Level) {
		return model.ScheduleEntryModel{}, ErrInvalidLevel
	}
	if !constants.IsValidDay(r.Day) {
		return model.ScheduleEntryModel{}, ErrInvalidDay
	}
	if !constants.IsValidTimeSlot(r.Time) {
		return model.ScheduleEntryModel{}, ErrInvalidTimeSlot
	}
	return model.ScheduleEntryModel{
		ScheduleEntryStudentName: strings.TrimSpace(r.StudentName),
		ScheduleEntryCoach:       r.Coach,
		ScheduleEntryLevel:       r.Level,
		ScheduleEntryDay:         r.Day,
		ScheduleEntryTime:        r.Time,
		ScheduleEntryNotes:       trimPtr(r.Notes),
	}, nil
}

// ---------- UPDATE / PATCH ----------
type ScheduleEntryUpdateRequest struct {
	StudentName *string `json:"studentName" validate:"omitempty,max=120"`
	Coach       *string `json:"coach"       validate:"omitempty"`
	Level       *string `json:"level"       validate:"omitempty"`
	Day         *string `json:"day"         validate:"omitempty"`
	Time        *string `json:"time"        validate:"omitempty"`
	Notes       *string `json:"notes"       validate:"omitempty,max=500"`
}

// ToUpdates: hanya field yang dikirim yang masuk ke store (partial update).
func (r ScheduleEntryUpdateRequest) ToUpdates() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	if r.StudentName != nil {
		name := strings.TrimSpace(*r.StudentName)
		if name == "" {
			return nil, errors.New("studentName tidak boleh kosong")
		}
		cols["schedule_entry_student_name"] = name
	}
	if r.Coach != nil {
		if !constants.IsValidCoach(*r.Coach) {
			return nil, ErrInvalidCoach
		}
		cols["schedule_entry_coach"] = *r.Coach
	}
	if r.Level != nil {
		if !constants.IsValidLevel(*r.Level) {
			return nil, ErrInvalidLevel
		}
		cols["schedule_entry_level"] = *r.Level
	}
	if r.Day != nil {
		if !constants.IsValidDay(*r.Day) {
			return nil, ErrInvalidDay
		}
		cols["schedule_entry_day"] = *r.Day
	}
	if r.Time != nil {
		if !constants.IsValidTimeSlot(*r.Time) {
			return nil, ErrInvalidTimeSlot
		}
		cols["schedule_entry_time"] = *r.Time
	}
	if r.Notes != nil {
		cols["schedule_entry_notes"] = trimPtr(r.Notes)
	}
	return cols, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"studentName"`
	Coach       string    `json:"coach"`
	Level       string    `json:"level"`
	Day         string    `json:"day"`
	Time        string    `json:"time"`
	Notes       *string   `json:"notes,omitempty"`
}

/* =========================================================
   3) MAPPERS (storage shape → app shape)
   ========================================================= */

func FromModel(m model.ScheduleEntryModel) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:          m.ScheduleEntryID,
		StudentName: m.ScheduleEntryStudentName,
		Coach:       m.ScheduleEntryCoach,
		Level:       m.ScheduleEntryLevel,
		Day:         m.ScheduleEntryDay,
		Time:        m.ScheduleEntryTime,
		Notes:       m.ScheduleEntryNotes,
	}
}

func FromModels(list []model.ScheduleEntryModel) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
