package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studify/internal/quiz"
)

// quizError maps controller errors onto status codes. Load failures carry
// their display reason and are always retryable.
func quizError(c *gin.Context, err error) {
	var le *quiz.LoadError
	switch {
	case errors.As(err, &le):
		status := http.StatusBadGateway
		if errors.Is(err, quiz.ErrProviderTimeout) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": le.Reason, "retryable": le.Retryable()})
	case errors.Is(err, quiz.ErrInvalidSettings):
		badRequest(c, err.Error())
	case errors.Is(err, quiz.ErrSuperseded),
		errors.Is(err, quiz.ErrNotInProgress),
		errors.Is(err, quiz.ErrNotComplete),
		errors.Is(err, quiz.ErrNothingToRetry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type quizView struct {
	State    string         `json:"state"`
	Settings *quiz.Settings `json:"settings,omitempty"`
	Current  *quiz.Progress `json:"current,omitempty"`
}

func (h *handlers) quizView() quizView {
	v := quizView{State: h.svc.Quiz.State().String()}
	if s, ok := h.svc.Quiz.Settings(); ok {
		v.Settings = &s
	}
	if p, err := h.svc.Quiz.Current(); err == nil {
		v.Current = &p
	}
	return v
}

func (h *handlers) categories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.svc.Config.RequestTimeout)
	defer cancel()

	cats, fallback := quiz.LoadCategories(ctx, h.svc.Trivia)
	c.JSON(http.StatusOK, gin.H{"categories": cats, "fallback": fallback})
}

func (h *handlers) startQuiz(c *gin.Context) {
	var s quiz.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		badRequest(c, "bad request")
		return
	}
	if err := h.svc.Quiz.Start(c.Request.Context(), s); err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.quizView())
}

func (h *handlers) currentQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, h.quizView())
}

type answerReq struct {
	Answer string `json:"answer"`
}

func (h *handlers) answerQuiz(c *gin.Context) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "bad request")
		return
	}
	res, err := h.svc.Quiz.SubmitAnswer(c.Request.Context(), req.Answer)
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) quizResult(c *gin.Context) {
	r, err := h.svc.Quiz.Result()
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *handlers) retryQuiz(c *gin.Context) {
	if err := h.svc.Quiz.Retry(c.Request.Context()); err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.quizView())
}

func (h *handlers) resetQuiz(c *gin.Context) {
	h.svc.Quiz.Reset()
	c.JSON(http.StatusOK, h.quizView())
}
