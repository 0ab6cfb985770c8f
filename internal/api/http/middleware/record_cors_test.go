package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestRecordMutationCORS_SetsHeaders(t *testing.T) {
	app := fiber.New()
	app.Put("/records/:id", RecordMutationCORS("PUT, PATCH"), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("PUT", "/records/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "PUT, PATCH, OPTIONS" {
		t.Errorf("Allow-Methods = %q, want %q", got, "PUT, PATCH, OPTIONS")
	}
	if got := resp.Header.Get("Access-Control-Allow-Headers"); got != "Content-Type, Accept" {
		t.Errorf("Allow-Headers = %q, want %q", got, "Content-Type, Accept")
	}
}

func TestRecordMutationCORS_HeadersSurviveHandlerFailure(t *testing.T) {
	app := fiber.New()
	app.Delete("/records/:id", RecordMutationCORS("DELETE"), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/records/404", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q on error response, want *", got)
	}
}

func TestRecordPreflight(t *testing.T) {
	app := fiber.New()
	app.Options("/records/:id", RecordPreflight("PUT, PATCH, DELETE"))

	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/records/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "PUT, PATCH, DELETE, OPTIONS" {
		t.Errorf("Allow-Methods = %q, want %q", got, "PUT, PATCH, DELETE, OPTIONS")
	}
}
