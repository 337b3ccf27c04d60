// internals/features/reports/dto/activity_report_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"digikidz_backend/internals/constants"
	model "digikidz_backend/internals/features/reports/model"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidCoach = errors.New("coach tidak dikenal")
	ErrInvalidLevel = errors.New("level tidak dikenal")
	ErrInvalidDate  = errors.New("tanggal tidak valid (YYYY-MM-DD)")
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// ---------- CREATE ----------
// Dipakai untuk JSON maupun multipart (file lampiran diambil terpisah dari form).
type ActivityReportCreateRequest struct {
	StudentName        string   `json:"studentName"        form:"studentName"        validate:"required,max=120"`
	Date               string   `json:"date"               form:"date"               validate:"required,datetime=2006-01-02"`
	Level              string   `json:"level"              form:"level"              validate:"required"`
	LessonWeek         int      `json:"lessonWeek"         form:"lessonWeek"         validate:"required,min=1"`
	LessonName         string   `json:"lessonName"         form:"lessonName"         validate:"required,max=200"`
	Tools              string   `json:"tools"              form:"tools"              validate:"omitempty,max=500"`
	Coach              string   `json:"coach"              form:"coach"              validate:"required"`
	CoachComment       string   `json:"coachComment"       form:"coachComment"       validate:"omitempty,max=2000"`
	GoalsMateri        string   `json:"goalsMateri"        form:"goalsMateri"        validate:"omitempty,max=2000"`
	ActivityReportText string   `json:"activityReportText" form:"activityReportText" validate:"omitempty,max=5000"`
	MediaURLs          []string `json:"mediaUrls"          form:"mediaUrls"          validate:"omitempty,dive,url"`
}

// ToModel: app shape → storage shape. Total; string kosong → NULL hanya di sini.
func (r ActivityReportCreateRequest) ToModel() (model.ActivityReportModel, error) {
	if !constants.IsValidCoach(r.Coach) {
		return model.ActivityReportModel{}, ErrInvalidCoach
	}
	if !constants.IsValidLevel(r.Level) {
		return model.ActivityReportModel{}, ErrInvalidLevel
	}
	day, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.ActivityReportModel{}, ErrInvalidDate
	}

	return model.ActivityReportModel{
		ActivityReportStudentName:  strings.TrimSpace(r.StudentName),
		ActivityReportDate:         datatypes.Date(day),
		ActivityReportLevel:        r.Level,
		ActivityReportLessonWeek:   r.LessonWeek,
		ActivityReportLessonName:   strings.TrimSpace(r.LessonName),
		ActivityReportTools:        emptyToNil(r.Tools),
		ActivityReportCoach:        r.Coach,
		ActivityReportCoachComment: emptyToNil(r.CoachComment),
		ActivityReportGoalsMateri:  emptyToNil(r.GoalsMateri),
		ActivityReportText:         emptyToNil(r.ActivityReportText),
		ActivityReportMediaURLs:    r.MediaURLs,
	}, nil
}

// ---------- UPDATE / PATCH ----------
type ActivityReportUpdateRequest struct {
	StudentName        *string   `json:"studentName"        form:"studentName"        validate:"omitempty,max=120"`
	Date               *string   `json:"date"               form:"date"               validate:"omitempty,datetime=2006-01-02"`
	Level              *string   `json:"level"              form:"level"              validate:"omitempty"`
	LessonWeek         *int      `json:"lessonWeek"         form:"lessonWeek"         validate:"omitempty,min=1"`
	LessonName         *string   `json:"lessonName"         form:"lessonName"         validate:"omitempty,max=200"`
	Tools              *string   `json:"tools"              form:"tools"              validate:"omitempty,max=500"`
	Coach              *string   `json:"coach"              form:"coach"              validate:"omitempty"`
	CoachComment       *string   `json:"coachComment"       form:"coachComment"       validate:"omitempty,max=2000"`
	GoalsMateri        *string   `json:"goalsMateri"        form:"goalsMateri"        validate:"omitempty,max=2000"`
	ActivityReportText *string   `json:"activityReportText" form:"activityReportText" validate:"omitempty,max=5000"`
	MediaURLs          *[]string `json:"mediaUrls"          form:"mediaUrls"          validate:"omitempty,dive,url"`
}

// ToUpdates: hanya field yang dikirim yang masuk ke store.
// MediaURLs di sini REPLACE; penambahan hasil upload baru dilakukan repo (AppendMedia).
func (r ActivityReportUpdateRequest) ToUpdates() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	if r.StudentName != nil {
		name := strings.TrimSpace(*r.StudentName)
		if name == "" {
			return nil, errors.New("studentName tidak boleh kosong")
		}
		cols["activity_report_student_name"] = name
	}
	if r.Date != nil {
		day, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		cols["activity_report_date"] = datatypes.Date(day)
	}
	if r.Level != nil {
		if !constants.IsValidLevel(*r.Level) {
			return nil, ErrInvalidLevel
		}
		cols["activity_report_level"] = *r.Level
	}
	if r.LessonWeek != nil {
		if *r.LessonWeek < 1 {
			return nil, errors.New("lessonWeek harus positif")
		}
		cols["activity_report_lesson_week"] = *r.LessonWeek
	}
	if r.LessonName != nil {
		name := strings.TrimSpace(*r.LessonName)
		if name == "" {
			return nil, errors.New("lessonName tidak boleh kosong")
		}
		cols["activity_report_lesson_name"] = name
	}
	if r.Tools != nil {
		cols["activity_report_tools"] = emptyToNil(*r.Tools)
	}
	if r.Coach != nil {
		if !constants.IsValidCoach(*r.Coach) {
			return nil, ErrInvalidCoach
		}
		cols["activity_report_coach"] = *r.Coach
	}
	if r.CoachComment != nil {
		cols["activity_report_coach_comment"] = emptyToNil(*r.CoachComment)
	}
	if r.GoalsMateri != nil {
		cols["activity_report_goals_materi"] = emptyToNil(*r.GoalsMateri)
	}
	if r.ActivityReportText != nil {
		cols["activity_report_text"] = emptyToNil(*r.ActivityReportText)
	}
	return cols, nil
}

/* =========================================================
   2) RESPONSES (app shape; NULL → default kosong seperti FE lama)
   ========================================================= */

type ActivityReportResponse struct {
	ID                 uuid.UUID `json:"id"`
	StudentName        string    `json:"studentName"`
	Date               string    `json:"date"`
	Level              string    `json:"level"`
	LessonWeek         int       `json:"lessonWeek"`
	LessonName         string    `json:"lessonName"`
	Tools              string    `json:"tools"`
	Coach              string    `json:"coach"`
	CoachComment       string    `json:"coachComment"`
	GoalsMateri        string    `json:"goalsMateri"`
	ActivityReportText string    `json:"activityReportText"`
	MediaURLs          []string  `json:"mediaUrls"`
	CreatedAt          time.Time `json:"createdAt"`
}

/* =========================================================
   3) MAPPERS (storage shape → app shape; total, semua field)
   ========================================================= */

func FromReportModel(m model.ActivityReportModel) ActivityReportResponse {
	media := []string{}
	if len(m.ActivityReportMediaURLs) > 0 {
		media = append(media, m.ActivityReportMediaURLs...)
	}
	return ActivityReportResponse{
		ID:                 m.ActivityReportID,
		StudentName:        m.ActivityReportStudentName,
		Date:               time.Time(m.ActivityReportDate).Format(dateLayout),
		Level:              m.ActivityReportLevel,
		LessonWeek:         m.ActivityReportLessonWeek,
		LessonName:         m.ActivityReportLessonName,
		Tools:              nilToEmpty(m.ActivityReportTools),
		Coach:              m.ActivityReportCoach,
		CoachComment:       nilToEmpty(m.ActivityReportCoachComment),
		GoalsMateri:        nilToEmpty(m.ActivityReportGoalsMateri),
		ActivityReportText: nilToEmpty(m.ActivityReportText),
		MediaURLs:          media,
		CreatedAt:          m.ActivityReportCreatedAt,
	}
}

func FromReportModels(list []model.ActivityReportModel) []ActivityReportResponse {
	out := make([]ActivityReportResponse, 0, len(list))
	for i := range list {
		out = append(out, FromReportModel(list[i]))
	}
	return out
}

func emptyToNil(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

func nilToEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
