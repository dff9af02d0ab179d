package serverutils

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(log logger.ILogger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	app.Use(RequestLogger(log))
	app.Get("/malformed", func(ctx *fiber.Ctx) error {
		return contract.MalformedID("xyz", errors.New("bad hex"))
	})
	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return fmt.Errorf("create: %w", contract.ValidationFailed("Note validation failed: content: content is required"))
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return contract.NotFound("9")
	})
	app.Get("/bad-request", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "content missing")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("connection reset by peer")
	})
	app.Use(UnknownEndpoint)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp(logger.NewNopLogger())

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "malformed id", path: "/malformed", wantStatus: 400, wantBody: `{"error":"malformatted id"}`},
		{name: "validation", path: "/validation", wantStatus: 400, wantBody: `{"error":"Note validation failed: content: content is required"}`},
		{name: "not found", path: "/missing", wantStatus: 404, wantBody: ``},
		{name: "fiber error", path: "/bad-request", wantStatus: 400, wantBody: `{"error":"content missing"}`},
		{name: "unclassified", path: "/boom", wantStatus: 500, wantBody: `{"error":"internal server error"}`},
		{name: "unknown route", path: "/nowhere", wantStatus: 404, wantBody: `{"error":"unknown endpoint"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, "GET", tt.path, "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	app := newTestApp(logger.NewLoggerWithCore(core))

	status, _ := do(t, app, "POST", "/api/notes", `{"content":"logged"}`)
	assert.Equal(t, 404, status)

	entries := logs.FilterMessage("Incoming request").All()
	require.Len(t, entries, 1)
	details := entries[0].ContextMap()["details"].(map[string]interface{})
	assert.Equal(t, "POST", details["method"])
	assert.Equal(t, "/api/notes", details["path"])
	assert.Equal(t, `{"content":"logged"}`, details["body"])

	completed := logs.FilterMessage("Request completed").All()
	require.Len(t, completed, 1)
	details = completed[0].ContextMap()["details"].(map[string]interface{})
	assert.EqualValues(t, 404, details["status"])
}

func TestRequestLogger_StatusAfterErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	app := newTestApp(logger.NewLoggerWithCore(core))

	status, body := do(t, app, "GET", "/malformed", "")
	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"error":"malformatted id"}`, body)

	completed := logs.FilterMessage("Request completed").All()
	require.Len(t, completed, 1)
	details := completed[0].ContextMap()["details"].(map[string]interface{})
	assert.EqualValues(t, 400, details["status"])
}

type createRequest struct {
	Content   string `json:"content" validate:"required"`
	Important *bool  `json:"important"`
}

type sizedRequest struct {
	Title string `json:"title" validate:"min=3"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(createRequest{Content: "ok"}))

	err := ValidateRequest(createRequest{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "content missing", fe.Message)

	err = ValidateRequest(sizedRequest{Title: "ab"})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "title failed on min", fe.Message)
}
