package service

import (
	"testing"

	model "digikidz_backend/internals/features/schedule/model"
)

func TestMatchesLevelFilter(t *testing.T) {
	tests := map[string]struct {
		level  string
		filter string
		want   bool
	}{
		"all matches anything":        {"Junior 2", FilterAll, true},
		"family prefix LC":            {"Little Creator 3", "Little Creator", true},
		"family prefix Junior":        {"Junior 1", "Junior", true},
		"family prefix Teenager":      {"Teenager 2", "Teenager", true},
		"family does not cross":       {"Junior 1", "Teenager", false},
		"trial exact match":           {"Trial Class", "Trial Class", true},
		"trial rejects lookalike":     {"Trial Class 2", "Trial Class", false},
		"specific tier exact":         {"Junior 2", "Junior 2", true},
		"specific tier no prefix":     {"Junior 2 Plus", "Junior 2", false},
		"unknown filter falls back":   {"Junior 1", "Bootcamp", false},
		"unknown filter exact equals": {"Bootcamp", "Bootcamp", true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MatchesLevelFilter(tc.level, tc.filter); got != tc.want {
				t.Fatalf("MatchesLevelFilter(%q, %q) = %v, want %v", tc.level, tc.filter, got, tc.want)
			}
		})
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []model.ScheduleEntryModel{
		{ScheduleEntryStudentName: "Aya", ScheduleEntryCoach: "Kak Dara", ScheduleEntryLevel: "Junior 1"},
		{ScheduleEntryStudentName: "Bima", ScheduleEntryCoach: "Kak Raka", ScheduleEntryLevel: "Junior 2"},
		{ScheduleEntryStudentName: "Citra", ScheduleEntryCoach: "Kak Dara", ScheduleEntryLevel: "Trial Class"},
	}

	tests := map[string]struct {
		coach string
		level string
		want  []string
	}{
		"no facet":        {FilterAll, FilterAll, []string{"Aya", "Bima", "Citra"}},
		"coach only":      {"Kak Dara", FilterAll, []string{"Aya", "Citra"}},
		"level family":    {FilterAll, "Junior", []string{"Aya", "Bima"}},
		"both facets":     {"Kak Dara", "Junior", []string{"Aya"}},
		"trial class":     {FilterAll, "Trial Class", []string{"Citra"}},
		"nothing matches": {"Kak Sinta", "Junior", []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FilterEntries(entries, tc.coach, tc.level)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entries, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				if got[i].ScheduleEntryStudentName != tc.want[i] {
					t.Fatalf("entry %d: expected %q, got %q", i, tc.want[i], got[i].ScheduleEntryStudentName)
				}
			}
		})
	}

	if len(entries) != 3 {
		t.Fatalf("input slice was mutated")
	}
}
