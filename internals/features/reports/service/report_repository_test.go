package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "digikidz_backend/internals/features/reports/model"
)

func TestReportRemoveReturnsRowAndPatchesMirror(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	id := uuid.New()
	repo.seed([]model.ActivityReportModel{{
		ActivityReportID:          id,
		ActivityReportStudentName: "Aya",
	}})

	mock.ExpectQuery(`SELECT \* FROM "activity_reports" WHERE activity_report_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"activity_report_id",
			"activity_report_student_name",
			"activity_report_media_urls",
		}).AddRow(id.String(), "Aya", "{https://cdn.example.com/report-media/1-abc123.webp}"))
	mock.ExpectExec(`DELETE FROM "activity_reports"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Remove(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed.ActivityReportMediaURLs) != 1 {
		t.Fatalf("expected removed row with its media urls, got %+v", removed.ActivityReportMediaURLs)
	}
	if len(repo.Snapshot()) != 0 {
		t.Fatalf("mirror must drop the removed row")
	}
}

func TestReportRemoveMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "activity_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_report_id"}))

	if _, err := repo.Remove(context.Background(), uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestReportAddStoreFailureLeavesMirror(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)
	repo.seed([]model.ActivityReportModel{{
		ActivityReportID:          uuid.New(),
		ActivityReportStudentName: "Bima",
	}})

	mock.ExpectQuery(`INSERT INTO "activity_reports"`).
		WillReturnError(errors.New("connection refused"))

	if _, err := repo.Add(context.Background(), model.ActivityReportModel{
		ActivityReportStudentName: "Aya",
	}); err == nil {
		t.Fatalf("expected store error")
	}

	snap := repo.Snapshot()
	if len(snap) != 1 || snap[0].ActivityReportStudentName != "Bima" {
		t.Fatalf("failed add must leave the mirror unchanged, got %+v", snap)
	}
}
