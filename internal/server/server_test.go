package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/remote"
	"github.com/idilsaglam/bucket/internal/store/jsonstore"
)

func newTestServer(t *testing.T) (*httptest.Server, *jsonstore.Store) {
	t.Helper()
	docs, err := jsonstore.New(filepath.Join(t.TempDir(), "bucket.json"))
	require.NoError(t, err)
	s := New(docs, &Config{Logger: log.New(io.Discard, "", 0)})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, docs
}

func TestGetEmpty(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/items")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestClientRoundTrip(t *testing.T) {
	ts, docs := newTestServer(t)
	c := remote.New(ts.URL, time.Second)
	ctx := context.Background()

	in := []model.Item{
		{ID: "1", Text: "Visit Kyoto", Category: "Travel", Priority: model.PriorityHigh},
		{ID: "2", Text: "Learn Go"},
	}
	require.NoError(t, c.ReplaceAll(ctx, in))

	got, err := c.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Visit Kyoto", got[0].Text)
	assert.Equal(t, model.PriorityHigh, got[0].Priority)

	onDisk, err := docs.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, onDisk, 2)
}

func TestPostRejectsNonArray(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Post(ts.URL+"/items", "application/json", strings.NewReader(`{"id":"1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMethods(t *testing.T) {
	ts, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/items", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/items", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStartStop(t *testing.T) {
	docs, err := jsonstore.New(filepath.Join(t.TempDir(), "bucket.json"))
	require.NoError(t, err)
	s := New(docs, &Config{Addr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, s.Start())
	require.NotEmpty(t, s.Addr())

	items, err := remote.New("http://"+s.Addr(), time.Second).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestErrReportsServeFailure(t *testing.T) {
	docs, err := jsonstore.New(filepath.Join(t.TempDir(), "bucket.json"))
	require.NoError(t, err)
	s := New(docs, &Config{Addr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, s.Start())

	// pull the listener out from under the serve loop
	require.NoError(t, s.listener.Close())

	select {
	case err, ok := <-s.Err():
		require.True(t, ok, "expected an error before the channel closed")
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve failure was not reported")
	}
}

func TestErrClosesOnStop(t *testing.T) {
	docs, err := jsonstore.New(filepath.Join(t.TempDir(), "bucket.json"))
	require.NoError(t, err)
	s := New(docs, &Config{Addr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err, ok := <-s.Err():
		assert.False(t, ok, "graceful stop is not an error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Err not closed after Stop")
	}
}
