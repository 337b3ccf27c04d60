package service

import (
	"testing"

	model "digikidz_backend/internals/features/reports/model"
)

func reportWeek(student string, week int) model.ActivityReportModel {
	return model.ActivityReportModel{
		ActivityReportStudentName: student,
		ActivityReportLessonWeek:  week,
	}
}

func weeksOf(reports []model.ActivityReportModel) []int {
	out := make([]int, 0, len(reports))
	for i := range reports {
		out = append(out, reports[i].ActivityReportLessonWeek)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildStudentLevels(t *testing.T) {
	reports := []model.ActivityReportModel{
		reportWeek("Aya", 17),
		reportWeek("Aya", 1),
		reportWeek("Aya", 33),
		reportWeek("Aya", 9),
		reportWeek("Aya", 5),
		reportWeek("Aya", 16),
	}

	levels := BuildStudentLevels(reports)
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	cases := []struct {
		level     int
		weekStart int
		weekEnd   int
		halfA     []int
		halfB     []int
	}{
		{1, 1, 16, []int{1, 5}, []int{9, 16}},
		{2, 17, 32, []int{17}, []int{}},
		{3, 33, 48, []int{33}, []int{}},
	}
	for i, want := range cases {
		got := levels[i]
		if got.Level != want.level || got.WeekStart != want.weekStart || got.WeekEnd != want.weekEnd {
			t.Fatalf("level %d: got window {%d %d %d}, want {%d %d %d}",
				i+1, got.Level, got.WeekStart, got.WeekEnd, want.level, want.weekStart, want.weekEnd)
		}
		if !equalInts(weeksOf(got.HalfA), want.halfA) {
			t.Fatalf("level %d halfA: got %v, want %v", want.level, weeksOf(got.HalfA), want.halfA)
		}
		if !equalInts(weeksOf(got.HalfB), want.halfB) {
			t.Fatalf("level %d halfB: got %v, want %v", want.level, weeksOf(got.HalfB), want.halfB)
		}
	}
}

func TestBuildStudentLevelsEmpty(t *testing.T) {
	levels := BuildStudentLevels(nil)
	if len(levels) != 1 {
		t.Fatalf("expected exactly one level for empty input, got %d", len(levels))
	}
	got := levels[0]
	if got.Level != 1 || got.WeekStart != 1 || got.WeekEnd != 16 {
		t.Fatalf("unexpected empty level window: {%d %d %d}", got.Level, got.WeekStart, got.WeekEnd)
	}
	if len(got.HalfA) != 0 || len(got.HalfB) != 0 {
		t.Fatalf("expected empty halves, got %d/%d", len(got.HalfA), len(got.HalfB))
	}
	if got.HalfA == nil || got.HalfB == nil {
		t.Fatalf("halves must be non-nil empty slices for JSON output")
	}
}

func TestBuildStudentLevelsDoesNotMutateInput(t *testing.T) {
	reports := []model.ActivityReportModel{
		reportWeek("Aya", 9),
		reportWeek("Aya", 1),
	}
	BuildStudentLevels(reports)
	if reports[0].ActivityReportLessonWeek != 9 {
		t.Fatalf("input slice was reordered")
	}
}

func TestGroupByStudent(t *testing.T) {
	reports := []model.ActivityReportModel{
		reportWeek("Citra", 1),
		reportWeek("aya", 2), // case-sensitive: bukan grup yang sama dengan "Aya"
		reportWeek("Aya", 1),
		reportWeek("Citra", 2),
	}

	grouped, names := GroupByStudent(reports)
	wantNames := []string{"Aya", "Citra", "aya"}
	if len(names) != len(wantNames) {
		t.Fatalf("expected %d groups, got %d (%v)", len(wantNames), len(names), names)
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Fatalf("expected sorted keys %v, got %v", wantNames, names)
		}
	}
	if len(grouped["Citra"]) != 2 {
		t.Fatalf("expected 2 reports for Citra, got %d", len(grouped["Citra"]))
	}
	if len(grouped["aya"]) != 1 || len(grouped["Aya"]) != 1 {
		t.Fatalf("grouping must be case-sensitive")
	}
}
