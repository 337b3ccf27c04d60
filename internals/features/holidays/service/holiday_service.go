// internals/features/holidays/service/holiday_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	dto "digikidz_backend/internals/features/holidays/dto"
)

// Kalender libur nasional Indonesia dari Nager.Date.
const CountryCode = "ID"

// HolidayService mengambil daftar libur per tahun dan menyimpan hasil fetch
// TERAKHIR yang diminta. Kalau tahun yang diminta berganti sebelum fetch
// sebelumnya selesai, hasil lama dibuang — dicek lewat epoch counter saat
// selesai, bukan dengan membatalkan request-nya.
type HolidayService struct {
	BaseURL string
	Client  *http.Client

	mu       sync.Mutex
	epoch    uint64
	year     int
	holidays []dto.Holiday
}

func NewHolidayService(baseURL string) *HolidayService {
	return &HolidayService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch mengambil daftar libur satu tahun. Hasil selalu dikembalikan ke
// pemanggil; state internal hanya di-commit kalau belum ada fetch yang
// lebih baru dimulai.
func (s *HolidayService) Fetch(ctx context.Context, year int) ([]dto.Holiday, error) {
	s.mu.Lock()
	s.epoch++
	gen := s.epoch
	s.mu.Unlock()

	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", s.BaseURL, year, CountryCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var holidays []dto.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen == s.epoch {
		s.year = year
		s.holidays = holidays
	}
	s.mu.Unlock()

	return holidays, nil
}

// Cached mengembalikan salinan hasil fetch terakhir yang ter-commit.
func (s *HolidayService) Cached() (int, []dto.Holiday) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.Holiday, len(s.holidays))
	copy(out, s.holidays)
	return s.year, out
}

/* =========================================================
   Pure queries
   ========================================================= */

// HolidaysOn: semua libur yang tanggalnya persis sama — bisa nol, satu,
// atau lebih (sumber mengizinkan beberapa nama libur di satu tanggal).
func HolidaysOn(holidays []dto.Holiday, date string) []dto.Holiday {
	out := []dto.Holiday{}
	for i := range holidays {
		if holidays[i].Date == date {
			out = append(out, holidays[i])
		}
	}
	return out
}

// GroupByMonth: partisi ke dua belas bucket bulan kalender (index 0 = Januari).
// Tanggal yang tidak bisa diparse dilewati.
func GroupByMonth(holidays []dto.Holiday) [12][]dto.Holiday {
	var buckets [12][]dto.Holiday
	for i := range holidays {
		t, err := time.Parse("2006-01-02", holidays[i].Date)
		if err != nil {
			continue
		}
		m := int(t.Month()) - 1
		buckets[m] = append(buckets[m], holidays[i])
	}
	return buckets
}
