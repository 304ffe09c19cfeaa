package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) GeocodeClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.GetDefaultConfig()
	cfg.Geocoding.BaseURL = server.URL
	return NewClient(cfg, logger.GetLogger())
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1600 Amphitheatre Parkway", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "pacsflow/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"place_id": 123, "display_name": "1600 Amphitheatre Parkway, Mountain View, CA, USA", "lat": "37.4224", "lon": "-122.0842", "class": "place", "type": "house"},
			{"place_id": 456, "display_name": "Amphitheatre Parkway, Mountain View, CA, USA", "lat": "37.4220", "lon": "-122.0850", "class": "highway", "type": "residential"}
		]`))
	})

	results, err := client.Search(context.Background(), "1600 Amphitheatre Parkway")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(123), results[0].PlaceID)
	assert.Equal(t, "37.4224", results[0].Lat)
	assert.Equal(t, "-122.0842", results[0].Lon)
}

func TestSearchRequiresQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	results, err := client.Search(context.Background(), "")
	assert.Nil(t, results)
	assert.True(t, ierr.IsValidation(err))
}

func TestSearchAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	results, err := client.Search(context.Background(), "somewhere")
	assert.Nil(t, results)
	assert.Error(t, err)
}

func TestSearchMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	})

	results, err := client.Search(context.Background(), "somewhere")
	assert.Nil(t, results)
	assert.Error(t, err)
}

func TestSearchOne(t *testing.T) {
	t.Run("returns best match", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"place_id": 123, "display_name": "Mountain View, CA", "lat": "37.39", "lon": "-122.08"}]`))
		})

		result, err := client.SearchOne(context.Background(), "Mountain View")
		require.NoError(t, err)
		assert.Equal(t, "Mountain View, CA", result.DisplayName)
	})

	t.Run("no results", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		result, err := client.SearchOne(context.Background(), "nowhere at all")
		assert.Nil(t, result)
		assert.True(t, ierr.IsNotFound(err))
	})
}
