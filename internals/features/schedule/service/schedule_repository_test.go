package service

import (
	"testing"

	"github.com/google/uuid"

	model "digikidz_backend/internals/features/schedule/model"
)

func scheduleEntry(student, day, timeSlot string) model.ScheduleEntryModel {
	return model.ScheduleEntryModel{
		ScheduleEntryID:          uuid.New(),
		ScheduleEntryStudentName: student,
		ScheduleEntryDay:         day,
		ScheduleEntryTime:        timeSlot,
	}
}

func TestEntriesFor(t *testing.T) {
	repo := NewScheduleRepository(nil)
	repo.seed([]model.ScheduleEntryModel{
		scheduleEntry("Aya", "senin", "09:00"),
		scheduleEntry("Bima", "senin", "10:00"),
		scheduleEntry("Citra", "senin", "09:00"),
		scheduleEntry("Dewi", "selasa", "09:00"),
	})

	tests := map[string]struct {
		day  string
		time string
		want []string
	}{
		"multiple in one cell": {"senin", "09:00", []string{"Aya", "Citra"}},
		"single entry":         {"senin", "10:00", []string{"Bima"}},
		"other day same slot":  {"selasa", "09:00", []string{"Dewi"}},
		"empty cell":           {"rabu", "09:00", []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := repo.EntriesFor(tc.day, tc.time)
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
}

func TestSnapshotReturnsCopy(t *testing.T) {
	repo := NewScheduleRepository(nil)
	repo.seed([]model.ScheduleEntryModel{
		scheduleEntry("Aya", "senin", "09:00"),
	})

	snap := repo.Snapshot()
	snap[0].ScheduleEntryStudentName = "diubah"

	if repo.Snapshot()[0].ScheduleEntryStudentName != "Aya" {
		t.Fatalf("mutating a snapshot leaked into the mirror")
	}
}
