package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studify/internal/accounts"
	"github.com/dmitrijs2005/studify/internal/backup"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/planner"
	"github.com/dmitrijs2005/studify/internal/services"
)

type handlers struct {
	svc    *services.Services
	logger logging.Logger
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func storageFailure(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage"})
}

/*** accounts ***/

func accountStatus(err error) int {
	switch {
	case errors.Is(err, accounts.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, accounts.ErrUserNotFound), errors.Is(err, accounts.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, accounts.ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (h *handlers) signup(c *gin.Context) {
	var req accounts.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "bad request")
		return
	}
	u, err := h.svc.Accounts.Signup(c.Request.Context(), req)
	if err != nil {
		c.JSON(accountStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "bad request")
		return
	}
	u, err := h.svc.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(accountStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) logout(c *gin.Context) {
	h.svc.Accounts.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *handlers) me(c *gin.Context) {
	ctx := c.Request.Context()
	u, ok := h.svc.Accounts.Current(ctx)
	if !ok || !h.svc.Accounts.Authorized(ctx) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, u)
}

/*** sessions ***/

func (h *handlers) listSessions(c *gin.Context) {
	kind, err := planner.ParseKind(c.Query("filter"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	list := planner.Apply(h.svc.Store.ListSessions(ctx), planner.Filter{Kind: kind, Search: c.Query("search")}, h.svc.Store.Now())
	c.JSON(http.StatusOK, list)
}

func (h *handlers) createSession(c *gin.Context) {
	var in planner.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "bad request")
		return
	}
	s, err := planner.NewSession(in, h.svc.Store.Now())
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	saved, ok := h.svc.Store.AddSession(c.Request.Context(), s)
	if !ok {
		storageFailure(c)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *handlers) getSession(c *gin.Context) {
	s, ok := h.svc.Store.GetSession(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// replaceSession validates a full edit form like createSession does.
func (h *handlers) replaceSession(c *gin.Context) {
	var in planner.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "bad request")
		return
	}
	patch, err := planner.Patch(in, h.svc.Store.Now())
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	h.applyPatch(c, patch)
}

// patchSession applies the fields present in the body as they are.
func (h *handlers) patchSession(c *gin.Context) {
	var patch models.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "bad request")
		return
	}
	h.applyPatch(c, patch)
}

func (h *handlers) applyPatch(c *gin.Context, patch models.SessionPatch) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, ok := h.svc.Store.GetSession(ctx, id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !h.svc.Store.UpdateSession(ctx, id, patch) {
		storageFailure(c)
		return
	}
	s, _ := h.svc.Store.GetSession(ctx, id)
	c.JSON(http.StatusOK, s)
}

func (h *handlers) deleteSession(c *gin.Context) {
	if !h.svc.Store.DeleteSession(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) stats(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.svc.Store.Now()
	sessions := h.svc.Store.ListSessions(ctx)
	c.JSON(http.StatusOK, gin.H{
		"stats": planner.ComputeStats(sessions, h.svc.Store.ListScores(ctx), now),
		"today": planner.Today(sessions, now),
	})
}

/*** scores & preferences ***/

func (h *handlers) listScores(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Store.ListScores(c.Request.Context()))
}

func (h *handlers) getPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Store.Preferences(c.Request.Context()))
}

func (h *handlers) putPreferences(c *gin.Context) {
	var p models.Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "bad request")
		return
	}
	if !h.svc.Store.SavePreferences(c.Request.Context(), p) {
		storageFailure(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

/*** snapshot & backups ***/

func (h *handlers) exportSnapshot(c *gin.Context) {
	snap := h.svc.Store.ExportSnapshot(c.Request.Context())
	c.Header("Content-Disposition", `attachment; filename="studify-export.json"`)
	c.IndentedJSON(http.StatusOK, snap)
}

func (h *handlers) importSnapshot(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, "bad request")
		return
	}
	if !h.svc.Store.ImportSnapshot(c.Request.Context(), raw) {
		h.logger.Warn(c.Request.Context(), "snapshot import rejected", "bytes", len(raw))
		badRequest(c, backup.ErrImportRejected.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) clearData(c *gin.Context) {
	if !h.svc.Store.ClearAll(c.Request.Context()) {
		storageFailure(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func backupStatus(err error) int {
	switch {
	case errors.Is(err, backup.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, backup.ErrNoBackups):
		return http.StatusNotFound
	case errors.Is(err, backup.ErrImportRejected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func (h *handlers) createBackup(c *gin.Context) {
	key, err := h.svc.Backup.Backup(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "backup failed", "error", err)
		c.JSON(backupStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

type restoreReq struct {
	Key string `json:"key"`
}

// restoreBackup restores the given key, or the newest backup when the body
// is empty or names no key.
func (h *handlers) restoreBackup(c *gin.Context) {
	var req restoreReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "bad request")
			return
		}
	}
	key, err := h.svc.Backup.Restore(c.Request.Context(), req.Key)
	if err != nil {
		c.JSON(backupStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key})
}

/*** quotes ***/

func (h *handlers) dailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Quotes.Daily(c.Request.Context()))
}

func (h *handlers) randomQuotes(c *gin.Context) {
	n := 0
	if v := c.Query("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			badRequest(c, "n must be a positive number")
			return
		}
		n = parsed
	}
	c.JSON(http.StatusOK, h.svc.Quotes.Random(c.Request.Context(), n))
}
