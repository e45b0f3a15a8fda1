package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "Ana", p.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","role":"admin"}`))
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("empty body", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		assert.ErrorIs(t, DecodeJSON(r, &p), ErrEmptyBody)
	})
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "слот занят"}, body)
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"appointmentId": id.String()})
	got, err := PathUUID(r, "appointmentId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"appointmentId": "42"})
	_, err = PathUUID(r, "appointmentId")
	assert.Error(t, err)

	_, err = PathUUID(httptest.NewRequest(http.MethodGet, "/", nil), "appointmentId")
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestQueryDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=2026-03-10", nil)
	got, err := QueryDate(r, "date")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-03-10", FormatDate(*got))

	got, err = QueryDate(httptest.NewRequest(http.MethodGet, "/", nil), "date")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = QueryDate(httptest.NewRequest(http.MethodGet, "/?date=10/03/2026", nil), "date")
	assert.Error(t, err)
}
