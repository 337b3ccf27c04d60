package helper

import "testing"

func TestKeyFromPublicURL(t *testing.T) {
	s := &OSSService{
		Endpoint:   "oss-ap-southeast-5.aliyuncs.com",
		BucketName: "digikidz",
		Prefix:     "report-media",
	}

	tests := map[string]struct {
		url  string
		want string
	}{
		"own object":     {"https://digikidz.oss-ap-southeast-5.aliyuncs.com/report-media/1724900000000-abc123.webp", "report-media/1724900000000-abc123.webp"},
		"foreign prefix": {"https://digikidz.oss-ap-southeast-5.aliyuncs.com/avatars/x.png", ""},
		"no path":        {"https://digikidz.oss-ap-southeast-5.aliyuncs.com", ""},
		"garbage":        {"::not-a-url", ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := s.KeyFromPublicURL(tc.url); got != tc.want {
				t.Fatalf("KeyFromPublicURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}

	// round-trip lewat CDN base
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.digikidz.id")
	key := "report-media/1724900000000-abc123.webp"
	if got := s.KeyFromPublicURL(s.PublicURL(key)); got != key {
		t.Fatalf("round-trip via public base failed: got %q", got)
	}
}

func TestRandAlnum(t *testing.T) {
	for _, n := range []int{1, 6, 12} {
		s := RandAlnum(n)
		if len(s) != n {
			t.Fatalf("expected %d characters, got %q", n, s)
		}
		for _, r := range s {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Fatalf("unexpected character %q in %q", r, s)
			}
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[RandAlnum(6)] = true
	}
	if len(seen) < 95 {
		t.Fatalf("expected near-unique suffixes, got %d distinct of 100", len(seen))
	}
}
