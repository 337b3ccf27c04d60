// internals/features/holidays/dto/holiday_dto.go
package dto

// Holiday: record read-only dari endpoint Nager.Date — tidak disimpan lokal.
// Field mengikuti format sumber apa adanya.
type Holiday struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Fixed       bool     `json:"fixed"`
	Global      bool     `json:"global"`
	Types       []string `json:"types"`
}

// MonthBucketResponse: satu bulan kalender untuk tampilan daftar tahunan.
type MonthBucketResponse struct {
	Month    int       `json:"month"` // 1..12
	Holidays []Holiday `json:"holidays"`
}
