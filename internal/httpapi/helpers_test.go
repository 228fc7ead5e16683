package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studify/internal/config"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/services"
	"github.com/dmitrijs2005/studify/internal/storage"
)

const questionsJSON = `{"response_code":0,"results":[
 {"type":"multiple","difficulty":"medium","category":"History","question":"First emperor of Rome?","correct_answer":"Augustus","incorrect_answers":["Nero","Caesar","Trajan"]},
 {"type":"boolean","difficulty":"medium","category":"History","question":"The Berlin Wall fell in 1989.","correct_answer":"True","incorrect_answers":["False"]}
]}`

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	svc     *services.Services
	handler http.Handler
}

func newEnv(t *testing.T, questions string) *testEnv {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, questions)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	provider := httptest.NewServer(mux)
	t.Cleanup(provider.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = storage.KindMemory
	cfg.TriviaBaseURL = provider.URL
	cfg.QuotesProxyURL = ""
	cfg.DailyQuoteURL = provider.URL + "/today"
	cfg.RandomQuotesURL = provider.URL + "/quotes"

	svc, err := services.New(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	srv := NewServer("127.0.0.1:0", logging.Nop(), svc, cfg.CORSOrigins, time.Second)
	return &testEnv{svc: svc, handler: srv.Router()}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) signup(t *testing.T) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"firstName": "Grace", "lastName": "Hopper", "email": "grace@example.com", "password": "cobol59",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
