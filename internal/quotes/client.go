// Package quotes serves the daily and random inspirational quotes. Remote
// providers are best effort: the Service always has a static quote to fall
// back on.
package quotes

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/netx"
)

const (
	DefaultProxyURL    = "https://api.allorigins.win/raw?url="
	DefaultDailyURL    = "https://zenquotes.io/api/today"
	DefaultRandomURL   = "https://api.quotable.io/quotes/random"
	DefaultRandomTags  = "education|wisdom|inspirational"
	DefaultRandomCount = 6
)

var ErrNoQuote = errors.New("no quote available")

// Provider is a remote quote source.
type Provider interface {
	Daily(ctx context.Context) (models.Quote, error)
	Random(ctx context.Context, n int) ([]models.Quote, error)
}

// Client fetches the ZenQuotes quote of the day through a CORS proxy and
// random quotes from Quotable.
type Client struct {
	dailyURL  string
	randomURL string
	http      *http.Client
}

// NewClient builds a Client. An empty proxyURL calls dailyURL directly.
func NewClient(proxyURL, dailyURL, randomURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	daily := dailyURL
	if proxyURL != "" {
		daily = proxyURL + url.QueryEscape(dailyURL)
	}
	return &Client{dailyURL: daily, randomURL: randomURL, http: httpClient}
}

var _ Provider = (*Client)(nil)

func (c *Client) Daily(ctx context.Context) (models.Quote, error) {
	var resp []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := netx.GetJSON(ctx, c.http, c.dailyURL, &resp); err != nil {
		return models.Quote{}, err
	}
	if len(resp) == 0 || resp[0].Q == "" {
		return models.Quote{}, ErrNoQuote
	}
	return models.Quote{Text: resp[0].Q, Author: resp[0].A}, nil
}

func (c *Client) Random(ctx context.Context, n int) ([]models.Quote, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(n))
	v.Set("tags", DefaultRandomTags)

	var resp []struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := netx.GetJSON(ctx, c.http, c.randomURL+"?"+v.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, ErrNoQuote
	}

	out := make([]models.Quote, len(resp))
	for i, q := range resp {
		out[i] = models.Quote{Text: q.Content, Author: q.Author}
	}
	return out, nil
}
