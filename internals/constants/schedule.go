package constants

// ==========================
// ✅ Enumerasi jadwal DIGIKIDZ
// ==========================

// Hari kelas (bahasa Indonesia, lowercase — sesuai kolom di store)
var Days = []string{
	"senin", "selasa", "rabu", "kamis", "jumat", "sabtu", "minggu",
}

// Slot waktu kelas. Format HH:MM supaya ORDER BY time ascending
// di store sama dengan urutan tampilan.
var TimeSlots = []string{
	"09:00",
	"10:00",
	"11:00",
	"13:00",
	"14:30",
	"16:00",
	"17:30",
}

// Daftar coach aktif
var Coaches = []string{
	"Kak Dara",
	"Kak Raka",
	"Kak Sinta",
	"Kak Yoga",
}

// Level/jenjang murid
var Levels = []string{
	"Little Creator 1",
	"Little Creator 2",
	"Little Creator 3",
	"Junior 1",
	"Junior 2",
	"Teenager 1",
	"Teenager 2",
	"Trial Class",
}

// Keluarga level untuk filter di halaman jadwal.
// "Trial Class" dicocokkan persis, sisanya berdasarkan prefix.
var LevelFamilies = []string{
	"Little Creator",
	"Junior",
	"Teenager",
	"Trial Class",
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidDay(v string) bool      { return contains(Days, v) }
func IsValidTimeSlot(v string) bool { return contains(TimeSlots, v) }
func IsValidCoach(v string) bool    { return contains(Coaches, v) }
func IsValidLevel(v string) bool    { return contains(Levels, v) }
