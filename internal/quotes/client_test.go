package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DailyThroughProxy(t *testing.T) {
	var gotTarget string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.URL.Query().Get("url")
		_, _ = w.Write([]byte(`[{"q":"Well begun is half done.","a":"Aristotle","h":"<blockquote/>"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/raw?url=", DefaultDailyURL, "", ts.Client())
	q, err := c.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Quote{Text: "Well begun is half done.", Author: "Aristotle"}, q)
	assert.Equal(t, DefaultDailyURL, gotTarget)
}

func TestClient_DailyEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient("", ts.URL, "", ts.Client())
	_, err := c.Daily(context.Background())
	assert.ErrorIs(t, err, ErrNoQuote)
}

func TestClient_Random(t *testing.T) {
	var limit, tags string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		tags = r.URL.Query().Get("tags")
		_, _ = w.Write([]byte(`[{"content":"Keep going.","author":"Anon"},{"content":"Read more.","author":"Someone"}]`))
	}))
	defer ts.Close()

	c := NewClient("", "", ts.URL+"/quotes/random", ts.Client())
	qs, err := c.Random(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "2", limit)
	assert.Equal(t, DefaultRandomTags, tags)
	assert.Equal(t, []models.Quote{{Text: "Keep going.", Author: "Anon"}, {Text: "Read more.", Author: "Someone"}}, qs)
}

func TestClient_RandomHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient("", "", ts.URL, ts.Client())
	_, err := c.Random(context.Background(), 3)
	assert.Error(t, err)
}

func TestRandomFallback(t *testing.T) {
	assert.Len(t, RandomFallback(3), 3)
	assert.Len(t, RandomFallback(100), 20)
	assert.Empty(t, RandomFallback(-1))
}
