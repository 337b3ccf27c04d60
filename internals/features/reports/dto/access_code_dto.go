// internals/features/reports/dto/access_code_dto.go
package dto

import (
	"github.com/google/uuid"

	model "digikidz_backend/internals/features/reports/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type AccessCodeGenerateRequest struct {
	StudentName string `json:"studentName" form:"studentName" validate:"required,max=120"`
}

type AccessCodeLookupRequest struct {
	AccessCode string `json:"accessCode" form:"accessCode" validate:"required,len=6"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type AccessCodeResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"studentName"`
	AccessCode  string    `json:"accessCode"`
}

// Hasil lookup parent: hanya nama murid + kode, tanpa id internal.
type AccessCodeLookupResponse struct {
	StudentName string `json:"studentName"`
	AccessCode  string `json:"accessCode"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func FromAccessCodeModel(m model.StudentAccessCodeModel) AccessCodeResponse {
	return AccessCodeResponse{
		ID:          m.StudentAccessCodeID,
		StudentName: m.StudentAccessCodeStudentName,
		AccessCode:  m.StudentAccessCodeCode,
	}
}

func FromAccessCodeModels(list []model.StudentAccessCodeModel) []AccessCodeResponse {
	out := make([]AccessCodeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromAccessCodeModel(list[i]))
	}
	return out
}

func ToLookupResponse(m model.StudentAccessCodeModel) AccessCodeLookupResponse {
	return AccessCodeLookupResponse{
		StudentName: m.StudentAccessCodeStudentName,
		AccessCode:  m.StudentAccessCodeCode,
	}
}
