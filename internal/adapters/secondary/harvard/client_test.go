package harvard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"relic-gallery-service/internal/config"
	"relic-gallery-service/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *harvardClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.MuseumConfig{
		Enabled: true,
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	return c.(*harvardClient)
}

func TestNewClient_DisabledWithoutKey(t *testing.T) {
	c := NewClient(&config.MuseumConfig{Enabled: true})
	assert.False(t, c.IsAvailable())

	c = NewClient(&config.MuseumConfig{Enabled: false, APIKey: "key"})
	assert.False(t, c.IsAvailable())
}

func TestGetObject(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/object/304069", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"objectid": 304069,
			"objectnumber": "1943.1304",
			"title": "Winter Landscape",
			"culture": "Japanese",
			"creditline": "Harvard Art Museums/Arthur M. Sackler Museum, Bequest of Grenville L. Winthrop",
			"imagepermissionlevel": 0,
			"primaryimageurl": "https://nrs.harvard.edu/img.jpg",
			"people": [
				{"name": "Engraver Person", "role": "Engraver"},
				{"name": "Utagawa Hiroshige", "role": "Artist"}
			],
			"images": [{"iiifbaseuri": "https://ids.lib.harvard.edu/ids/iiif/12345"}]
		}`))
	}))

	obj, err := c.GetObject(context.Background(), 304069)
	assert.NoError(t, err)
	assert.Equal(t, int64(304069), obj.ObjectID)
	assert.Equal(t, "Winter Landscape", obj.Title)
	assert.Equal(t, "Utagawa Hiroshige", obj.Artist)
	assert.Equal(t, "Arthur M. Sackler Museum", obj.Museum)
	assert.Equal(t, "https://ids.lib.harvard.edu/ids/iiif/12345", obj.IIIFBaseURI)
}

func TestGetObject_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetObject(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMuseumObjectNotFound)
}

func TestGetObject_EmptyRecord(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := c.GetObject(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMuseumObjectNotFound)
}

func TestGetObject_UntitledFallback(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"objectid": 5, "creditline": "Gift of a friend"}`))
	}))

	obj, err := c.GetObject(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Untitled", obj.Title)
	assert.Equal(t, "Harvard Art Museums", obj.Museum)
}

func TestSearch_Keyword(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/object", r.URL.Path)
		assert.Equal(t, "amphora", r.URL.Query().Get("keyword"))
		assert.Equal(t, "1", r.URL.Query().Get("hasimage"))
		w.Write([]byte(`{"records": [
			{
				"objectid": 1,
				"title": "Amphora",
				"imagepermissionlevel": 0,
				"primaryimageurl": "https://nrs.harvard.edu/a.jpg",
				"images": [{"iiifbaseuri": "https://ids.lib.harvard.edu/ids/iiif/1"}]
			},
			{
				"objectid": 2,
				"title": "Restricted Amphora",
				"imagepermissionlevel": 2,
				"primaryimageurl": "https://nrs.harvard.edu/b.jpg"
			}
		]}`))
	}))

	results, err := c.Search(context.Background(), "amphora", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	assert.True(t, results[0].CanDisplayImage)
	assert.Equal(t, "Unknown Artist", results[0].Artist)
	assert.Equal(t, "https://ids.lib.harvard.edu/ids/iiif/1/full/200,/0/default.jpg", results[0].ThumbnailURL)

	assert.False(t, results[1].CanDisplayImage)
	assert.Empty(t, results[1].ThumbnailURL)
}

func TestSearch_LimitedPermissionThumbnail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records": [
			{
				"objectid": 3,
				"title": "Limited",
				"imagepermissionlevel": 1,
				"primaryimageurl": "https://nrs.harvard.edu/c.jpg",
				"images": [{"iiifbaseuri": "https://ids.lib.harvard.edu/ids/iiif/3"}]
			}
		]}`))
	}))

	results, err := c.Search(context.Background(), "limited", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "https://ids.lib.harvard.edu/ids/iiif/3/full/256,/0/default.jpg", results[0].ThumbnailURL)
}

func TestSearch_NumericQueryTriesExactID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/object/304069" {
			w.Write([]byte(`{"objectid": 304069, "title": "Exact Match"}`))
			return
		}
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))

	results, err := c.Search(context.Background(), "304069", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Exact Match", results[0].Title)
}

func TestSearch_NumericQueryFallsBackToKeyword(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/object/1999" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "1999", r.URL.Query().Get("keyword"))
		w.Write([]byte(`{"records": [{"objectid": 7, "title": "Vase, 1999"}]}`))
	}))

	results, err := c.Search(context.Background(), "1999", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Vase, 1999", results[0].Title)
}
