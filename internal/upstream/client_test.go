package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/commercedesk/geodata-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, releaseURL string) *Client {
	return NewClient(config.ImporterConfig{
		BaseURL:     baseURL,
		ReleaseURL:  releaseURL,
		HTTPTimeout: 5 * time.Second,
	})
}

func TestClient_FetchTableCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/csv/countries.csv":
			w.Write([]byte("id,name,iso2\n1,Afghanistan,AF\n2,\"Bolivia, Plurinational State of\",BO\n"))
		case "/csv/states.csv":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL+"/release")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		records, err := client.FetchTableCSV(ctx, "countries")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Afghanistan", records[0].Str("name"))
		assert.Equal(t, "Bolivia, Plurinational State of", records[1].Str("name"))
	})

	t.Run("Non-success status is a download error", func(t *testing.T) {
		_, err := client.FetchTableCSV(ctx, "states")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("Missing table is a download error", func(t *testing.T) {
		_, err := client.FetchTableCSV(ctx, "regions")
		require.Error(t, err)
	})
}

func TestClient_FetchCombined(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/json/countries+states+cities.json", r.URL.Path)
			w.Write([]byte(`{
				"countries": [{"id": 1, "name": "Afghanistan", "latitude": "33.00000000", "capital": null}],
				"states": [],
				"cities": [{"id": 52, "name": "Ashkasham", "state_id": 3901}]
			}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, srv.URL+"/release")
		doc, err := client.FetchCombined(context.Background())
		require.NoError(t, err)

		require.Len(t, doc["countries"], 1)
		country := doc["countries"][0]
		assert.Equal(t, 1, country.Int("id"))
		assert.Equal(t, "Afghanistan", country.Str("name"))
		require.NotNil(t, country.Float("latitude"))
		assert.InDelta(t, 33.0, *country.Float("latitude"), 0.0001)
		assert.Equal(t, "", country.Str("capital"))

		assert.Empty(t, doc["states"])
		require.Len(t, doc["cities"], 1)
		assert.Equal(t, 3901, doc["cities"][0].Int("state_id"))
	})

	t.Run("Malformed document is a parse error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, srv.URL+"/release")
		_, err := client.FetchCombined(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestClient_FetchDatasetVersion(t *testing.T) {
	t.Run("Release tag", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tag_name": "v2.6"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, srv.URL+"/release")
		assert.Equal(t, "v2.6", client.FetchDatasetVersion(context.Background()))
	})

	t.Run("Falls back to current date on failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, srv.URL+"/release")
		version := client.FetchDatasetVersion(context.Background())
		assert.Equal(t, time.Now().Format("2006-01-02"), version)
	})

	t.Run("Falls back on empty tag", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, srv.URL+"/release")
		version := client.FetchDatasetVersion(context.Background())
		assert.Equal(t, time.Now().Format("2006-01-02"), version)
	})
}
