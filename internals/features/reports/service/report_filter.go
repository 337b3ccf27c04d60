// internals/features/reports/service/report_filter.go
package service

import (
	"strings"

	model "digikidz_backend/internals/features/reports/model"
)

// FilterAll menonaktifkan facet coach.
const FilterAll = "all"

// FilterReports: untuk tab Riwayat admin — pencarian substring nama murid
// (case-insensitive) + coach persis. Murni, urutan relatif dipertahankan.
func FilterReports(reports []model.ActivityReportModel, search, coach string) []model.ActivityReportModel {
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.ActivityReportModel, 0, len(reports))
	for i := range reports {
		if q != "" && !strings.Contains(strings.ToLower(reports[i].ActivityReportStudentName), q) {
			continue
		}
		if coach != FilterAll && reports[i].ActivityReportCoach != coach {
			continue
		}
		out = append(out, reports[i])
	}
	return out
}
