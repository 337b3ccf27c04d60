package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	svc "digikidz_backend/internals/features/reports/service"
)

func newParentApp() *fiber.App {
	app := fiber.New()
	pc := NewParentController(
		svc.NewAccessCodeRepository(nil),
		svc.NewReportRepository(nil),
		validator.New(),
	)
	app.Post("/parent/lookup", pc.Lookup)
	app.Get("/parent/reports", pc.Reports)
	return app
}

func TestParentLookup(t *testing.T) {
	app := newParentApp()

	tests := map[string]struct {
		body       string
		wantStatus int
	}{
		"missing accessCode": {`{}`, fiber.StatusBadRequest},
		"wrong length":       {`{"accessCode":"ABC"}`, fiber.StatusBadRequest},
		// lolos validasi panjang, dinormalisasi jadi kosong → kode salah
		"blank code": {`{"accessCode":"      "}`, fiber.StatusNotFound},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/parent/lookup", strings.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestParentReportsRequiresCode(t *testing.T) {
	app := newParentApp()

	for name, target := range map[string]string{
		"no code":    "/parent/reports",
		"blank code": "/parent/reports?code=%20%20",
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}
		})
	}
}
