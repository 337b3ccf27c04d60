// internals/features/reports/dto/report_group_dto.go
package dto

// LevelBucketResponse: satu jendela level 16-mingguan untuk tampilan
// per-murid (dua paruh 8 minggu).
type LevelBucketResponse struct {
	Level     int                      `json:"level"`
	WeekStart int                      `json:"weekStart"`
	WeekEnd   int                      `json:"weekEnd"`
	HalfA     []ActivityReportResponse `json:"halfA"`
	HalfB     []ActivityReportResponse `json:"halfB"`
}

// StudentLevelsResponse: tampilan grouped admin — satu murid + level-levelnya.
type StudentLevelsResponse struct {
	StudentName string                `json:"studentName"`
	Levels      []LevelBucketResponse `json:"levels"`
}
