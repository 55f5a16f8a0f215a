package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/delivery/http/response"
	domainerrors "tnp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    domainerrors.Category
		wantMessage string
		wantFields  domainerrors.FieldErrors
	}{
		{
			name:        "validation error keeps fields",
			err:         domainerrors.CustomField("", "endDate", "End date must be after the start date"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantType:    domainerrors.CategoryValidation,
			wantMessage: "Input validation failed",
			wantFields:  domainerrors.FieldErrors{"endDate": {"End date must be after the start date"}},
		},
		{
			name:        "wrapped api error",
			err:         errors.Wrap(domainerrors.ErrStudentNotFound, "lookup"),
			wantStatus:  http.StatusNotFound,
			wantType:    domainerrors.CategoryNotFound,
			wantMessage: "Student not found",
		},
		{
			name:        "database error hides driver detail",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "insert"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    domainerrors.CategoryServer,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "echo route not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantType:    domainerrors.CategoryNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "echo body too large",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantType:    domainerrors.CategoryBadRequest,
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error is generic",
			err:         errors.New("secret internal detail"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    domainerrors.CategoryServer,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newBufferLogger()
			mw := NewErrorMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(deliverycontext.WithRequestID(req.Context(), "req-42"))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret internal detail")
			assert.NotContains(t, rec.Body.String(), "connection refused")

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body.Error.Type)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantFields, body.Error.Fields)
			assert.Equal(t, "req-42", body.Meta.RequestID)

			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Contains(t, logs.String(), `"level":"ERROR"`)
			}
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	logger, logs := newBufferLogger()
	mw := NewErrorMiddleware(logger)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, c.JSON(http.StatusCreated, map[string]string{"ok": "yes"}))

	mw.HandleHTTPError(errors.New("second write failed"), c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "second write failed")
}

func TestErrorMiddleware_HeadRequest(t *testing.T) {
	mw := NewErrorMiddleware(newDiscardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	mw.HandleHTTPError(domainerrors.ErrAccessDenied, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
