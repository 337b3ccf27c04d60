package database

import "testing"

// Env store yang kosong tidak boleh mematikan proses: handle tetap dibuat,
// kegagalan koneksi baru muncul di operasi pertama.
func TestConnectDBWithoutStoreConfig(t *testing.T) {
	for _, k := range []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_SSLMODE"} {
		t.Setenv(k, "")
	}
	DB = nil

	ConnectDB()
	if DB == nil {
		t.Fatalf("expected a lazy DB handle even without store config")
	}

	// pool tuning di atas handle lazy juga tidak boleh panik
	TunePool()
}
