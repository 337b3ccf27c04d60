// internals/features/schedule/model/schedule_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntryModel: satu slot kelas mingguan untuk satu murid.
// (day,time) sengaja TIDAK unik — satu sel bisa berisi beberapa murid.
type ScheduleEntryModel struct {
	ScheduleEntryID uuid.UUID `gorm:"column:schedule_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_entry_id"`

	ScheduleEntryStudentName string  `gorm:"column:schedule_entry_student_name;type:varchar(120);not null" json:"schedule_entry_student_name"`
	ScheduleEntryCoach       string  `gorm:"column:schedule_entry_coach;type:varchar(60);not null"         json:"schedule_entry_coach"`
	ScheduleEntryLevel       string  `gorm:"column:schedule_entry_level;type:varchar(60);not null"         json:"schedule_entry_level"`
	ScheduleEntryDay         string  `gorm:"column:schedule_entry_day;type:varchar(10);not null"           json:"schedule_entry_day"`
	ScheduleEntryTime        string  `gorm:"column:schedule_entry_time;type:varchar(5);not null"           json:"schedule_entry_time"`
	ScheduleEntryNotes       *string `gorm:"column:schedule_entry_notes;type:text"                         json:"schedule_entry_notes,omitempty"`

	ScheduleEntryCreatedAt time.Time `gorm:"column:schedule_entry_created_at;type:timestamptz;not null;autoCreateTime" json:"schedule_entry_created_at"`
	ScheduleEntryUpdatedAt time.Time `gorm:"column:schedule_entry_updated_at;type:timestamptz;not null;autoUpdateTime" json:"schedule_entry_updated_at"`
}

func (ScheduleEntryModel) TableName() string { return "schedule_entries" }
