package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/bucket/internal/model"
)

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"1","text":"Visit Kyoto","category":"Travel","dueDate":"2026-04-01"}]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL+"/", time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Visit Kyoto", items[0].Text)
	assert.Equal(t, "2026-04-01", items[0].DueDate.String())
}

func TestFetchAllNonArrayIsEmpty(t *testing.T) {
	for _, body := range []string{`{"error":"nope"}`, `null`, `garbage`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		items, err := New(srv.URL, time.Second).FetchAll(context.Background())
		srv.Close()
		require.NoError(t, err, body)
		assert.NotNil(t, items, body)
		assert.Empty(t, items, body)
	}
}

func TestFetchAllKeepsGoodElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"a","text":"one"},{"id":"b","text":"two","created":""},{"id":"c","dueDate":"03/04/2025"}]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL, time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "two", items[1].Text)
	assert.True(t, items[2].DueDate.IsZero())
}

func TestFetchAllErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	_, err := New(srv.URL, time.Second).FetchAll(context.Background())
	assert.Error(t, err)
	srv.Close()

	// closed server: transport error
	_, err = New(srv.URL, time.Second).FetchAll(context.Background())
	assert.Error(t, err)
}

func TestReplaceAll(t *testing.T) {
	var got []model.Item
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `whatever`)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.ReplaceAll(context.Background(), []model.Item{{ID: "a", Text: "A", Completed: true}}))
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)

	require.NoError(t, c.ReplaceAll(context.Background(), nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReplaceAllStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	assert.Error(t, New(srv.URL, time.Second).ReplaceAll(context.Background(), nil))
}
