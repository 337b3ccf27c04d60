package dto

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() ScheduleEntryCreateRequest {
	return ScheduleEntryCreateRequest{
		StudentName: "  Aya Putri  ",
		Coach:       "Kak Dara",
		Level:       "Junior 1",
		Day:         "senin",
		Time:        "09:00",
	}
}

func TestScheduleCreateToModel(t *testing.T) {
	m, err := validCreateRequest().ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ScheduleEntryStudentName != "Aya Putri" {
		t.Fatalf("studentName must be trimmed, got %q", m.ScheduleEntryStudentName)
	}
	if m.ScheduleEntryNotes != nil {
		t.Fatalf("absent notes must map to NULL")
	}

	req := validCreateRequest()
	req.Notes = strPtr("   ")
	m, err = req.ToModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ScheduleEntryNotes != nil {
		t.Fatalf("blank notes must map to NULL")
	}

	req.Notes = strPtr(" bawa laptop ")
	m, _ = req.ToModel()
	if m.ScheduleEntryNotes == nil || *m.ScheduleEntryNotes != "bawa laptop" {
		t.Fatalf("notes must be trimmed, got %v", m.ScheduleEntryNotes)
	}
}

func TestScheduleCreateToModelRejects(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*ScheduleEntryCreateRequest)
		wantErr error
	}{
		"unknown coach": {func(r *ScheduleEntryCreateRequest) { r.Coach = "Kak Budi" }, ErrInvalidCoach},
		"unknown level": {func(r *ScheduleEntryCreateRequest) { r.Level = "Senior 1" }, ErrInvalidLevel},
		"unknown day":   {func(r *ScheduleEntryCreateRequest) { r.Day = "monday" }, ErrInvalidDay},
		"unknown slot":  {func(r *ScheduleEntryCreateRequest) { r.Time = "08:15" }, ErrInvalidTimeSlot},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			if _, err := req.ToModel(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestScheduleUpdateToUpdates(t *testing.T) {
	cols, err := ScheduleEntryUpdateRequest{}.ToUpdates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cols) != 0 {
		t.Fatalf("empty request must produce no columns, got %v", cols)
	}

	req := ScheduleEntryUpdateRequest{
		Coach: strPtr("Kak Raka"),
		Notes: strPtr(""),
	}
	cols, err = req.ToUpdates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %v", cols)
	}
	if cols["schedule_entry_coach"] != "Kak Raka" {
		t.Fatalf("unexpected coach column: %v", cols["schedule_entry_coach"])
	}
	if v, ok := cols["schedule_entry_notes"]; !ok || v.(*string) != nil {
		t.Fatalf("blank notes must clear the column to NULL, got %v", v)
	}

	if _, err := (ScheduleEntryUpdateRequest{Day: strPtr("someday")}).ToUpdates(); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := (ScheduleEntryUpdateRequest{StudentName: strPtr("  ")}).ToUpdates(); err == nil {
		t.Fatalf("blank studentName must be rejected")
	}
}
