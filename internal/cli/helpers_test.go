package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/studify/internal/config"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/services"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/stretchr/testify/require"
)

const questionsJSON = `{"response_code":0,"results":[
 {"type":"multiple","difficulty":"easy","category":"Science &amp; Nature","question":"H2O is?","correct_answer":"Water","incorrect_answers":["Salt","Sand","Gold"]},
 {"type":"boolean","difficulty":"easy","category":"Science &amp; Nature","question":"The sun is a star.","correct_answer":"True","incorrect_answers":["False"]}
]}`

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, questionsJSON)
	})
	mux.HandleFunc("/api_category.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"trivia_categories":[{"id":17,"name":"Science & Nature"}]}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServices(t *testing.T) *services.Services {
	t.Helper()
	srv := newProviderServer(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = storage.KindMemory
	cfg.TriviaBaseURL = srv.URL
	cfg.QuotesProxyURL = ""
	cfg.DailyQuoteURL = srv.URL + "/quotes/today"
	cfg.RandomQuotesURL = srv.URL + "/quotes/random"
	cfg.ExportPath = t.TempDir() + "/export.json"

	svc, err := services.New(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

// newTestApp returns an App reading the given lines. Password prompts read
// from the same input.
func newTestApp(t *testing.T, svc *services.Services, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	var out bytes.Buffer
	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}
	return NewApp(svc, strings.NewReader(input), &out), &out
}

// captureREPL redirects printlnFn into a buffer for the duration of the test.
func captureREPL(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

func signup(t *testing.T, svc *services.Services) {
	t.Helper()
	a, _ := newTestApp(t, svc, "Ada", "Lovelace", "ada@example.com", "secret1")
	require.NoError(t, a.Signup(context.Background(), nil))
}
