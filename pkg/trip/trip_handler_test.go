package trip

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, func()) {
	t.Helper()
	service, _, _, cleanup := setupTripService(t)
	return NewHandler(service), cleanup
}

func postTrip(t *testing.T, handler *Handler, dto TripDTO) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(dto)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/trip", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Create(w, req)
	return w
}

func TestCreateTripHandler(t *testing.T) {
	t.Run("should respond with the created trip", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()

		// when
		w := postTrip(t, handler, TripDTO{Name: "Rome", Destination: "Rome"})

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		var created TripDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "open", created.Status)
	})

	t.Run("should respond 400 with field errors for invalid input", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()

		// when
		w := postTrip(t, handler, TripDTO{Name: "", Destination: ""})

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response map[string]map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["errors"], "name")
		assert.Contains(t, response["errors"], "destination")
	})
}

func TestGetActiveTripHandler(t *testing.T) {
	t.Run("should respond 404 when no trip is active", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/trip/active", nil)
		w := httptest.NewRecorder()
		handler.GetActive(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return the active trip", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()
		postTrip(t, handler, TripDTO{Name: "Rome", Destination: "Rome"})

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/trip/active", nil)
		w := httptest.NewRecorder()
		handler.GetActive(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		var active TripDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
		assert.Equal(t, "Rome", active.Name)
	})
}

func TestActivateTripHandler(t *testing.T) {
	t.Run("should respond 409 when activating a closed trip", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()
		w := postTrip(t, handler, TripDTO{Name: "Rome", Destination: "Rome"})
		var created TripDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		closeReq := httptest.NewRequest(http.MethodPost, "/api/trip/"+created.ID+"/close", nil)
		closeReq = mux.SetURLVars(closeReq, map[string]string{"id": created.ID})
		handler.Close(httptest.NewRecorder(), closeReq)

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/trip/"+created.ID+"/activate", nil)
		req = mux.SetURLVars(req, map[string]string{"id": created.ID})
		w = httptest.NewRecorder()
		handler.Activate(w, req)

		// then
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("should respond 404 for an unknown trip", func(t *testing.T) {
		// given
		handler, cleanup := setupHandlerTest(t)
		defer cleanup()

		// when
		req := httptest.NewRequest(http.MethodPut, "/api/trip/missing/activate", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		w := httptest.NewRecorder()
		handler.Activate(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
