// internals/features/reports/model/activity_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ActivityReportModel: satu laporan kegiatan per pertemuan untuk satu murid.
// LessonWeek adalah indeks minggu kurikulum yang diisi manual oleh admin —
// tidak ada kaitan dengan minggu kalender, hanya dipakai untuk bucketing level.
type ActivityReportModel struct {
	ActivityReportID uuid.UUID `gorm:"column:activity_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_report_id"`

	ActivityReportStudentName  string         `gorm:"column:activity_report_student_name;type:varchar(120);not null" json:"activity_report_student_name"`
	ActivityReportDate         datatypes.Date `gorm:"column:activity_report_date;type:date;not null"                 json:"activity_report_date"`
	ActivityReportLevel        string         `gorm:"column:activity_report_level;type:varchar(60);not null"         json:"activity_report_level"`
	ActivityReportLessonWeek   int            `gorm:"column:activity_report_lesson_week;not null"                    json:"activity_report_lesson_week"`
	ActivityReportLessonName   string         `gorm:"column:activity_report_lesson_name;type:varchar(200);not null"  json:"activity_report_lesson_name"`
	ActivityReportTools        *string        `gorm:"column:activity_report_tools;type:text"                         json:"activity_report_tools,omitempty"`
	ActivityReportCoach        string         `gorm:"column:activity_report_coach;type:varchar(60);not null"         json:"activity_report_coach"`
	ActivityReportCoachComment *string        `gorm:"column:activity_report_coach_comment;type:text"                 json:"activity_report_coach_comment,omitempty"`

	// satu goal per baris
	ActivityReportGoalsMateri *string `gorm:"column:activity_report_goals_materi;type:text" json:"activity_report_goals_materi,omitempty"`
	ActivityReportText        *string `gorm:"column:activity_report_text;type:text"         json:"activity_report_text,omitempty"`

	ActivityReportMediaURLs pq.StringArray `gorm:"column:activity_report_media_urls;type:text[]" json:"activity_report_media_urls,omitempty"`

	ActivityReportCreatedAt time.Time `gorm:"column:activity_report_created_at;type:timestamptz;not null;autoCreateTime" json:"activity_report_created_at"`
	ActivityReportUpdatedAt time.Time `gorm:"column:activity_report_updated_at;type:timestamptz;not null;autoUpdateTime" json:"activity_report_updated_at"`
}

func (ActivityReportModel) TableName() string { return "activity_reports" }
