// internals/features/reports/model/student_access_code_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentAccessCodeModel: kredensial lookup parent — 6 karakter uppercase
// alfanumerik terikat ke satu nama murid. Tanpa login.
type StudentAccessCodeModel struct {
	StudentAccessCodeID uuid.UUID `gorm:"column:student_access_code_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_access_code_id"`

	StudentAccessCodeStudentName string `gorm:"column:student_access_code_student_name;type:varchar(120);not null" json:"student_access_code_student_name"`
	StudentAccessCodeCode        string `gorm:"column:student_access_code_code;type:char(6);not null;index"        json:"student_access_code_code"`

	StudentAccessCodeCreatedAt time.Time `gorm:"column:student_access_code_created_at;type:timestamptz;not null;autoCreateTime" json:"student_access_code_created_at"`
}

func (StudentAccessCodeModel) TableName() string { return "student_access_codes" }
