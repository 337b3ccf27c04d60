package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	AdminPasswordHash string
	NagerBaseURL      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")
	NagerBaseURL = GetEnv("NAGER_BASE_URL", "https://date.nager.at")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset! Login admin tidak akan berfungsi.")
	}
	if AdminPasswordHash == "" {
		log.Println("❌ ADMIN_PASSWORD_HASH belum diset! Login admin tidak akan berfungsi.")
	}

	// Koneksi store: ketiadaan hanya di-warn, startup tetap jalan.
	// Operasi ke store akan gagal saat dipanggil.
	for _, k := range []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"} {
		if GetEnv(k) == "" {
			log.Printf("⚠️ %s belum diset — operasi database akan gagal saat dipanggil.", k)
		}
	}
	for _, k := range []string{"ALI_OSS_ENDPOINT", "ALI_OSS_ACCESS_KEY", "ALI_OSS_SECRET_KEY", "ALI_OSS_BUCKET"} {
		if GetEnv(k) == "" {
			log.Printf("⚠️ %s belum diset — upload media akan gagal saat dipanggil.", k)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
