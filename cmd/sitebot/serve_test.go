package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/chat"
	"github.com/sitewise/sitebot/corpus"
	"github.com/sitewise/sitebot/mock"
)

var testFragments = []sitebot.Fragment{
	{Level: 1, Text: "Our Services"},
	{Text: "We offer professional web development and digital marketing services that help small businesses grow their online presence and reach new customers in competitive markets."},
	{Text: "Our experienced team builds fast responsive websites, runs targeted seo campaigns, and manages social media accounts so you can focus on running your business every single day."},
}

func readyCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c := &corpus.Corpus{
		Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
			return url, nil
		}},
		Extractor: &mock.Extractor{ExtractFn: func(html string) (*sitebot.ExtractResult, error) {
			return &sitebot.ExtractResult{ContentHTML: html}, nil
		}},
		Fragmenter: &mock.Fragmenter{FragmentsFn: func(string) ([]sitebot.Fragment, error) {
			return testFragments, nil
		}},
	}
	require.NoError(t, c.Build(context.Background(), []string{"https://example.com/services"}))
	return c
}

func testServer(t *testing.T, c *corpus.Corpus, rebuild func(context.Context) error) *server {
	t.Helper()
	if rebuild == nil {
		rebuild = func(context.Context) error { return nil }
	}
	r := &chat.Responder{Source: c, SiteName: "Acme Digital"}
	return newServer(c, r, slog.New(slog.DiscardHandler), rebuild)
}

func TestServer_Chat(t *testing.T) {
	t.Parallel()

	t.Run("answers when ready", func(t *testing.T) {
		t.Parallel()

		srv := testServer(t, readyCorpus(t), nil)
		req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"what services do you offer?"}`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)
		var resp chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Response, "Web Development")
	})

	t.Run("initializing message before first build", func(t *testing.T) {
		t.Parallel()

		srv := testServer(t, &corpus.Corpus{}, nil)
		req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)
		var resp chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Response, "still learning")
	})

	t.Run("unavailable message after failed build", func(t *testing.T) {
		t.Parallel()

		c := &corpus.Corpus{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				return "", sitebot.Errorf(sitebot.EUNAVAILABLE, "status 503")
			}},
			Extractor:  &mock.Extractor{ExtractFn: func(string) (*sitebot.ExtractResult, error) { return nil, nil }},
			Fragmenter: &mock.Fragmenter{FragmentsFn: func(string) ([]sitebot.Fragment, error) { return nil, nil }},
		}
		require.Error(t, c.Build(context.Background(), []string{"https://example.com/"}))

		srv := testServer(t, c, nil)
		req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		var resp chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Response, "unavailable")
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()

		srv := testServer(t, readyCorpus(t), nil)
		req := httptest.NewRequest("POST", "/chat", strings.NewReader("not json"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, 400, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := testServer(t, readyCorpus(t), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ready", body["state"])
}

func TestServer_Stats(t *testing.T) {
	t.Parallel()

	srv := testServer(t, readyCorpus(t), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/stats", nil))

	require.Equal(t, 200, rec.Code)
	var stats corpus.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, corpus.StateReady, stats.State)
	assert.NotZero(t, stats.ChunkCount)
	assert.NotZero(t, stats.VocabularySize)
}

func TestServer_Init(t *testing.T) {
	t.Parallel()

	rebuilt := make(chan struct{})
	srv := testServer(t, readyCorpus(t), func(context.Context) error {
		close(rebuilt)
		return nil
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("POST", "/init", nil))
	assert.Equal(t, 202, rec.Code)

	select {
	case <-rebuilt:
	case <-time.After(time.Second):
		t.Fatal("rebuild was not triggered")
	}
}
