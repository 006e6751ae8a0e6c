package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"herbal/internal/delivery/api/response"
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantText   string
		wantLogged bool
	}{
		{
			name:       "client app error",
			err:        domainerrors.ErrValidationFailed.WithDetails("limit failed on gte"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "wrapped app error",
			err:        domainerrors.ErrPlantNotFound.WrapMessage("get plant"),
			wantStatus: http.StatusNotFound,
			wantCode:   "PLANT_NOT_FOUND",
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "server app error",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: timeout"), "insert"),
			wantStatus: http.StatusInternalServerError,
			wantText:   MessageInternalError,
			wantLogged: true,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantText:   MessageInternalError,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &bytes.Buffer{}
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, rec.Body.String())
			} else {
				var body response.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}
