package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "digikidz_backend/internals/features/holidays/dto"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/PublicHolidays/2026/ID" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `[
			{"date":"2026-01-01","localName":"Tahun Baru Masehi","name":"New Year's Day","countryCode":"ID","fixed":false,"global":true,"types":["Public"]},
			{"date":"2026-03-19","localName":"Hari Raya Nyepi","name":"Day of Silence","countryCode":"ID","fixed":false,"global":true,"types":["Public"]}
		]`)
	}))
	defer srv.Close()

	s := NewHolidayService(srv.URL)
	holidays, err := s.Fetch(context.Background(), 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays, got %d", len(holidays))
	}
	if holidays[0].LocalName != "Tahun Baru Masehi" {
		t.Fatalf("unexpected localName %q", holidays[0].LocalName)
	}

	year, cached := s.Cached()
	if year != 2026 || len(cached) != 2 {
		t.Fatalf("expected cache for 2026 with 2 entries, got year %d with %d", year, len(cached))
	}
}

func TestFetchNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewHolidayService(srv.URL)
	if _, err := s.Fetch(context.Background(), 2026); err == nil {
		t.Fatalf("expected error for non-200 status")
	} else if !strings.Contains(err.Error(), "204") {
		t.Fatalf("expected status code in error, got %v", err)
	}

	if year, _ := s.Cached(); year != 0 {
		t.Fatalf("failed fetch must not commit, got year %d", year)
	}
}

// Fetch yang dimulai lebih dulu tapi selesai belakangan tidak boleh
// menimpa hasil fetch yang lebih baru.
func TestFetchSupersede(t *testing.T) {
	slowEntered := make(chan struct{})
	slowRelease := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/2025/") {
			close(slowEntered)
			<-slowRelease
			fmt.Fprint(w, `[{"date":"2025-01-01","localName":"Tahun Baru Masehi","name":"New Year's Day","countryCode":"ID","fixed":false,"global":true,"types":["Public"]}]`)
			return
		}
		fmt.Fprint(w, `[{"date":"2026-01-01","localName":"Tahun Baru Masehi","name":"New Year's Day","countryCode":"ID","fixed":false,"global":true,"types":["Public"]}]`)
	}))
	defer srv.Close()

	s := NewHolidayService(srv.URL)

	done := make(chan error, 1)
	go func() {
		_, err := s.Fetch(context.Background(), 2025)
		done <- err
	}()
	<-slowEntered

	if _, err := s.Fetch(context.Background(), 2026); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(slowRelease)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error from superseded fetch: %v", err)
	}

	year, cached := s.Cached()
	if year != 2026 {
		t.Fatalf("stale fetch overwrote cache: got year %d", year)
	}
	if len(cached) != 1 || cached[0].Date != "2026-01-01" {
		t.Fatalf("unexpected cached holidays: %+v", cached)
	}
}

func TestHolidaysOn(t *testing.T) {
	holidays := []dto.Holiday{
		{Date: "2026-03-19", LocalName: "Hari Raya Nyepi"},
		{Date: "2026-03-20", LocalName: "Hari Suci Nyepi (cuti bersama)"},
		{Date: "2026-03-19", LocalName: "Awal Ramadhan"},
	}

	tests := map[string]struct {
		date string
		want int
	}{
		"two on same date": {"2026-03-19", 2},
		"single":           {"2026-03-20", 1},
		"none":             {"2026-03-21", 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := HolidaysOn(holidays, tc.date)
			if len(got) != tc.want {
				t.Fatalf("expected %d holidays on %s, got %d", tc.want, tc.date, len(got))
			}
			if got == nil {
				t.Fatalf("result must be non-nil for JSON output")
			}
		})
	}
}

func TestGroupByMonth(t *testing.T) {
	holidays := []dto.Holiday{
		{Date: "2026-01-01", LocalName: "Tahun Baru Masehi"},
		{Date: "2026-12-25", LocalName: "Hari Raya Natal"},
		{Date: "2026-03-19", LocalName: "Hari Raya Nyepi"},
		{Date: "bukan-tanggal", LocalName: "rusak"},
	}

	buckets := GroupByMonth(holidays)
	if len(buckets[0]) != 1 || buckets[0][0].LocalName != "Tahun Baru Masehi" {
		t.Fatalf("expected Tahun Baru in January, got %+v", buckets[0])
	}
	if len(buckets[2]) != 1 {
		t.Fatalf("expected 1 holiday in March, got %d", len(buckets[2]))
	}
	if len(buckets[11]) != 1 {
		t.Fatalf("expected 1 holiday in December, got %d", len(buckets[11]))
	}

	total := 0
	for i := range buckets {
		total += len(buckets[i])
	}
	if total != 3 {
		t.Fatalf("unparseable dates must be skipped, got %d bucketed", total)
	}
}
