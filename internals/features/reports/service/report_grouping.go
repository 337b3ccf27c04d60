// internals/features/reports/service/report_grouping.go
package service

import (
	"sort"

	model "digikidz_backend/internals/features/reports/model"
)

// Kurikulum DIGIKIDZ: satu level = 16 minggu pelajaran, dibagi dua paruh 8 minggu.
const (
	WeeksPerLevel = 16
	HalfSpan      = 8
)

// LevelBucket: satu jendela level [WeekStart..WeekEnd] untuk satu murid.
// Level/paruh tanpa laporan tetap dihadirkan (kosong).
type LevelBucket struct {
	Level     int                         `json:"level"`
	WeekStart int                         `json:"weekStart"`
	WeekEnd   int                         `json:"weekEnd"`
	HalfA     []model.ActivityReportModel `json:"halfA"`
	HalfB     []model.ActivityReportModel `json:"halfB"`
}

// BuildStudentLevels: murni — partisi laporan satu murid ke level 16-mingguan.
// maxWeek 0 (list kosong) menghasilkan tepat satu level kosong [1..16].
func BuildStudentLevels(reports []model.ActivityReportModel) []LevelBucket {
	sorted := make([]model.ActivityReportModel, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ActivityReportLessonWeek < sorted[j].ActivityReportLessonWeek
	})

	maxWeek := 0
	for i := range sorted {
		if sorted[i].ActivityReportLessonWeek > maxWeek {
			maxWeek = sorted[i].ActivityReportLessonWeek
		}
	}

	totalLevels := (maxWeek + WeeksPerLevel - 1) / WeeksPerLevel
	if totalLevels < 1 {
		totalLevels = 1
	}

	out := make([]LevelBucket, 0, totalLevels)
	for i := 0; i < totalLevels; i++ {
		weekStart := WeeksPerLevel*i + 1
		weekEnd := WeeksPerLevel * (i + 1)

		bucket := LevelBucket{
			Level:     i + 1,
			WeekStart: weekStart,
			WeekEnd:   weekEnd,
			HalfA:     []model.ActivityReportModel{},
			HalfB:     []model.ActivityReportModel{},
		}
		for j := range sorted {
			w := sorted[j].ActivityReportLessonWeek
			switch {
			case w >= weekStart && w <= weekStart+HalfSpan-1:
				bucket.HalfA = append(bucket.HalfA, sorted[j])
			case w >= weekStart+HalfSpan && w <= weekEnd:
				bucket.HalfB = append(bucket.HalfB, sorted[j])
			}
		}
		out = append(out, bucket)
	}
	return out
}

// GroupByStudent: kelompokkan laporan semua murid berdasarkan nama persis
// (case-sensitive, tanpa trim). Urutan kunci leksikografis untuk tampilan.
func GroupByStudent(reports []model.ActivityReportModel) (map[string][]model.ActivityReportModel, []string) {
	grouped := make(map[string][]model.ActivityReportModel)
	for i := range reports {
		name := reports[i].ActivityReportStudentName
		grouped[name] = append(grouped[name], reports[i])
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return grouped, names
}
