package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newIdempEnv(t *testing.T) (*echo.Echo, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return echo.New(), rdb, mr
}

func doIdemp(e *echo.Echo, mw echo.MiddlewareFunc, handler echo.HandlerFunc, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/expenses")
	c.Set(ctxUserPublicID, "useruseruseruseruseruseruseruser")
	_ = mw(handler)(c)
	return rec
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, rdb, _ := newIdempEnv(t)
	mw := Idempotency(rdb, time.Minute)

	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"n": calls})
	}

	key := strings.Repeat("a", 32)
	first := doIdemp(e, mw, handler, key, `{"amount":10}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}

	second := doIdemp(e, mw, handler, key, `{"amount":10}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	var body map[string]int
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad replay json: %v", err)
	}
	if body["n"] != 1 {
		t.Fatalf("replayed body n = %d, want 1", body["n"])
	}
}

func TestIdempotency_KeyReuseWithDifferentBody(t *testing.T) {
	e, rdb, _ := newIdempEnv(t)
	mw := Idempotency(rdb, time.Minute)
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"ok": "yes"})
	}

	key := strings.Repeat("b", 32)
	doIdemp(e, mw, handler, key, `{"amount":10}`)
	rec := doIdemp(e, mw, handler, key, `{"amount":999}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	e, rdb, _ := newIdempEnv(t)
	mw := Idempotency(rdb, time.Minute)

	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]int{"n": calls})
	}

	doIdemp(e, mw, handler, "", `{}`)
	doIdemp(e, mw, handler, "", `{}`)
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2 (no dedupe without a key)", calls)
	}
}

func TestIdempotency_InvalidKeyFormat(t *testing.T) {
	e, rdb, _ := newIdempEnv(t)
	mw := Idempotency(rdb, time.Minute)
	handler := func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}

	rec := doIdemp(e, mw, handler, "short", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIdempotency_InProgressConflict(t *testing.T) {
	e, rdb, _ := newIdempEnv(t)
	mw := Idempotency(rdb, time.Minute)

	key := strings.Repeat("c", 32)
	// simulate a concurrent first request still running
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{}`)), CreatedAt: time.Now().UTC()}
	payload, _ := json.Marshal(entry)
	fullKey := buildKey(http.MethodPost, "/expenses", "useruseruseruseruseruseruseruser", key)
	if err := rdb.Set(context.Background(), fullKey, payload, time.Minute).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := func(c echo.Context) error {
		t.Fatal("handler must not run while in progress")
		return nil
	}
	rec := doIdemp(e, mw, handler, key, `{}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestValidIdemKey(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{strings.Repeat("a", 32), true},
		{"0f8fad5b-d9cb-469f-a165-70867728950e", true},
		{"  0f8fad5b-d9cb-469f-a165-70867728950e  ", true},
		{strings.Repeat("g", 32), false},
		{"short", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := validIdemKey(tt.in); got != tt.want {
			t.Errorf("validIdemKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
