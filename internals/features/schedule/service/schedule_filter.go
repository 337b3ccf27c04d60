// internals/features/schedule/service/schedule_filter.go
package service

import (
	"strings"

	model "digikidz_backend/internals/features/schedule/model"
)

// FilterAll menonaktifkan sebuah facet filter.
const FilterAll = "all"

// MatchesLevelFilter: "Little Creator"/"Junior"/"Teenager" cocok berdasarkan
// prefix (mencakup semua tier di keluarga itu), "Trial Class" harus sama persis.
func MatchesLevelFilter(level, filter string) bool {
	switch filter {
	case FilterAll:
		return true
	case "Little Creator", "Junior", "Teenager":
		return strings.HasPrefix(level, filter)
	case "Trial Class":
		return level == "Trial Class"
	default:
		return level == filter
	}
}

// FilterEntries: subset entri yang lolos facet coach + level.
// Murni: input tidak dimutasi, urutan relatif dipertahankan.
func FilterEntries(entries []model.ScheduleEntryModel, coach, level string) []model.ScheduleEntryModel {
	out := make([]model.ScheduleEntryModel, 0, len(entries))
	for i := range entries {
		if coach != FilterAll && entries[i].ScheduleEntryCoach != coach {
			continue
		}
		if !MatchesLevelFilter(entries[i].ScheduleEntryLevel, level) {
			continue
		}
		out = append(out, entries[i])
	}
	return out
}
