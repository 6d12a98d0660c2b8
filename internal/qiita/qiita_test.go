package qiita

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/items/abc123", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc123","tags":[{"name":"Go","versions":[]},{"name":"AWS","versions":["2"]}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v2/", "tok", srv.Client(), nil)
	tags, err := c.ItemTags(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "AWS"}, tags)
}

func TestItemTagsMissingTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer srv.Close()

	tags, err := NewClient(srv.URL, "", srv.Client(), nil).ItemTags(context.Background(), "abc123")
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestItemTagsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Rate limit exceeded","type":"rate_limit_exceeded"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", srv.Client(), nil).ItemTags(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Rate limit exceeded")
}

func TestItemTagsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", srv.Client(), nil).ItemTags(context.Background(), "abc123")
	assert.Error(t, err)
}

func TestItemTagsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, "", nil, nil).ItemTags(context.Background(), "abc123")
	assert.Error(t, err)
}
