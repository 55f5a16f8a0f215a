package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tnp/config"
	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates id when header is missing"},
		{name: "reuses client id", incoming: "client-supplied-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			var seenLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				_, parseErr := uuid.Parse(headerID)
				assert.NoError(t, parseErr)
			}
			assert.Equal(t, headerID, seenCtxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, seenLogger)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("logs rendered error status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		mw := NewLoggerMiddleware(logger, newDebugConfig(true))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Handle(func(echo.Context) error {
			return echo.ErrNotFound
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "request completed", entry["msg"])
		assert.EqualValues(t, http.StatusNotFound, entry["status"])
		assert.Equal(t, "/missing", entry["uri"])
		assert.Equal(t, "x=1", entry["query"])
	})

	t.Run("records caller role", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		mw := NewLoggerMiddleware(logger, newDebugConfig(true))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/experience", nil), rec)

		err := mw.Handle(func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &entity.Identity{ID: uuid.New(), Role: entity.RoleStudent})

			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, string(entity.RoleStudent), entry["role"])
	})

	t.Run("passes through when debug is off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		mw := NewLoggerMiddleware(logger, newDebugConfig(false))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := mw.Handle(func(echo.Context) error {
			return echo.ErrForbidden
		})(c)
		assert.ErrorIs(t, err, echo.ErrForbidden)
		assert.Zero(t, buf.Len())
	})
}
