package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sitehttp "github.com/sitewise/sitebot/http"

	"github.com/sitewise/sitebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := sitehttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "ok")
	assert.Equal(t, sitebot.DefaultUserAgent, gotUA)
}

func TestFetcher_CustomUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := sitehttp.NewFetcher(sitehttp.WithUserAgent("custom-bot/1.0"))
	_, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "custom-bot/1.0", gotUA)
}

func TestFetcher_NonHTMLContentType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	f := sitehttp.NewFetcher()
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(err))
}

func TestFetcher_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := sitehttp.NewFetcher()
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, sitebot.EUNAVAILABLE, sitebot.ErrorCode(err))
}

func TestFetcher_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := sitehttp.NewFetcher(sitehttp.WithTimeout(20 * time.Millisecond))
	_, err := f.Fetch(context.Background(), srv.URL)

	assert.Error(t, err)
}
