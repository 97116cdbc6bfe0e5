package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOmitsEmptyQueryValues(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, nil)
	require.NoError(t, err)

	var out map[string]bool
	query := url.Values{}
	query.Set("company", "us-framing")
	query.Set("status", "")
	err = client.Get(context.Background(), "/posts/", query, &out)
	require.NoError(t, err)

	require.Equal(t, "us-framing", gotQuery.Get("company"))
	require.False(t, gotQuery.Has("status"), "empty filter values must be omitted")
	require.True(t, out["ok"])
}

func TestNon2xxYieldsErrorWithStatusCode(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Post missing not found"}`))
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, nil)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/posts/missing", nil, &struct{}{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
	require.Contains(t, err.Error(), "Post missing not found")

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.True(t, IsNotFound(err))
}

func TestNon2xxWithoutDetailUsesStatusText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, nil)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/dashboard/summary", nil, &struct{}{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
	require.False(t, IsNotFound(err))
}

func TestPutSendsJSONBody(t *testing.T) {
	t.Parallel()

	var gotContentType string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, decodeJSON(r, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, nil)
	require.NoError(t, err)

	err = client.Put(context.Background(), "/posts/post-1", map[string]string{"title": "Updated"}, nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "Updated", gotBody["title"])
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient("   ", nil)
	require.Error(t, err)
}

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
