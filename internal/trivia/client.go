// Package trivia is the Open Trivia DB client used as the quiz question
// provider.
package trivia

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/netx"
	"github.com/dmitrijs2005/studify/internal/quiz"
)

const DefaultBaseURL = "https://opentdb.com"

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil httpClient uses
// http.DefaultClient; deadlines come from the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

var _ quiz.QuestionProvider = (*Client)(nil)

type categoriesResponse struct {
	TriviaCategories []models.Category `json:"trivia_categories"`
}

type questionsResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Type             string   `json:"type"`
		Difficulty       string   `json:"difficulty"`
		Category         string   `json:"category"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// FetchCategories lists the provider's categories. An empty list is not an
// error.
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var resp categoriesResponse
	if err := netx.GetJSON(ctx, c.http, c.baseURL+"/api_category.php", &resp); err != nil {
		return nil, classify(err)
	}
	if resp.TriviaCategories == nil {
		return []models.Category{}, nil
	}
	return resp.TriviaCategories, nil
}

// FetchQuestions requests q.Amount questions. Text fields arrive HTML-encoded
// and are decoded here so answers compare as plain strings.
func (c *Client) FetchQuestions(ctx context.Context, q quiz.Query) ([]models.Question, error) {
	var resp questionsResponse
	if err := netx.GetJSON(ctx, c.http, c.questionsURL(q), &resp); err != nil {
		return nil, classify(err)
	}
	if resp.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: response code %d", quiz.ErrNoQuestionsAvailable, resp.ResponseCode)
	}
	if len(resp.Results) == 0 {
		return nil, quiz.ErrNoQuestionsAvailable
	}

	out := make([]models.Question, 0, len(resp.Results))
	for _, r := range resp.Results {
		incorrect := make([]string, len(r.IncorrectAnswers))
		for i, a := range r.IncorrectAnswers {
			incorrect[i] = html.UnescapeString(a)
		}
		out = append(out, models.Question{
			Text:             html.UnescapeString(r.Question),
			CorrectAnswer:    html.UnescapeString(r.CorrectAnswer),
			IncorrectAnswers: incorrect,
			Category:         html.UnescapeString(r.Category),
			Difficulty:       r.Difficulty,
			Type:             r.Type,
		})
	}
	return out, nil
}

func (c *Client) questionsURL(q quiz.Query) string {
	v := url.Values{}
	v.Set("amount", strconv.Itoa(q.Amount))
	if q.Category != 0 {
		v.Set("category", strconv.Itoa(q.Category))
	}
	if q.Difficulty != "" {
		v.Set("difficulty", q.Difficulty)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return c.baseURL + "/api.php?" + v.Encode()
}

func classify(err error) error {
	if netx.IsTimeout(err) {
		return fmt.Errorf("%w: %w", quiz.ErrProviderTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", quiz.ErrProviderError, err)
}
