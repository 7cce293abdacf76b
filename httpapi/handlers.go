package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authzkit/errors"
	"github.com/kbukum/authzkit/loader"
	"github.com/kbukum/authzkit/logger"
	"github.com/kbukum/authzkit/observability"
	"github.com/kbukum/authzkit/rebac"
	"github.com/kbukum/authzkit/validation"
	"github.com/kbukum/authzkit/version"
)

// Handlers implements the policy-decision API.
type Handlers struct {
	checker *observability.InstrumentedChecker
	store   *rebac.Store
	log     *logger.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(checker *observability.InstrumentedChecker, store *rebac.Store, log *logger.Logger) *Handlers {
	return &Handlers{
		checker: checker,
		store:   store,
		log:     log.WithComponent("httpapi"),
	}
}

// CheckRequest is the body of POST /v1/check. User is optional; it
// defaults to the authenticated caller.
type CheckRequest struct {
	User       string `json:"user"`
	Permission string `json:"permission" validate:"required"`
	Object     string `json:"object" validate:"required"`
}

// CheckResponse reports a permission decision. Reason is advisory only.
type CheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Check handles POST /v1/check. The decision maps directly onto the
// response body; a deny is still a 200.
func (h *Handlers) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Validation("invalid request body").WithCause(err))
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(c, err)
		return
	}
	user := req.User
	if user == "" {
		user = callerRef(c)
	}

	decision := h.checker.Check(c.Request.Context(), user, req.Permission, req.Object)
	c.JSON(http.StatusOK, CheckResponse{Allowed: decision.Allowed, Reason: decision.Reason})
}

// AccessibleResponse lists the objects the caller may act on.
type AccessibleResponse struct {
	Objects []string `json:"objects"`
	Count   int      `json:"count"`
}

// Accessible handles GET /v1/accessible?permission=...&type=...
func (h *Handlers) Accessible(c *gin.Context) {
	permission := c.Query("permission")
	objectType := c.Query("type")
	if permission == "" || objectType == "" {
		respondError(c, errors.Validation("permission and type query parameters are required"))
		return
	}

	refs := h.checker.ListAccessible(c.Request.Context(), callerRef(c), permission, objectType)
	objects := make([]string, len(refs))
	for i, r := range refs {
		objects[i] = r.String()
	}
	c.JSON(http.StatusOK, AccessibleResponse{Objects: objects, Count: len(objects)})
}

// ContentResponse carries a permission-gated read result. Denied reads get
// the sentinel text, never an error status.
type ContentResponse struct {
	Object  string `json:"object"`
	Content string `json:"content"`
}

// Content handles GET /v1/content/:type/:id.
func (h *Handlers) Content(c *gin.Context) {
	object := c.Param("type") + ":" + c.Param("id")
	content := h.checker.FilteredRead(c.Request.Context(), callerRef(c), object)
	c.JSON(http.StatusOK, ContentResponse{Object: object, Content: content})
}

// TuplesResponse is the relationship-tuple export.
type TuplesResponse struct {
	Tuples []rebac.Tuple `json:"tuples"`
	Count  int           `json:"count"`
}

// Tuples handles GET /v1/tuples.
func (h *Handlers) Tuples(c *gin.Context) {
	tuples := h.store.Snapshot().CollectTuples()
	c.JSON(http.StatusOK, TuplesResponse{Tuples: tuples, Count: len(tuples)})
}

// ReloadRequest is the body of POST /v1/admin/reload.
type ReloadRequest struct {
	File string `json:"file" validate:"required"`
}

// Reload handles POST /v1/admin/reload: it loads a YAML graph document on
// top of the current store. Running checks keep their snapshot.
func (h *Handlers) Reload(c *gin.Context) {
	var req ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Validation("invalid request body").WithCause(err))
		return
	}
	if err := validation.Struct(req); err != nil {
		respondError(c, err)
		return
	}

	n, err := loader.LoadFile(h.store, req.File)
	if err != nil {
		respondError(c, errors.Validation("graph load failed").WithCause(err))
		return
	}
	h.log.Info("graph reloaded", map[string]interface{}{
		"file":     req.File,
		"entities": n,
	})
	c.JSON(http.StatusOK, gin.H{"loaded": n})
}

// Health handles GET /healthz.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"entities": h.store.Len(),
	})
}

// Version handles GET /version.
func (h *Handlers) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}

// callerRef builds the user reference of the authenticated caller.
func callerRef(c *gin.Context) string {
	return rebac.TypeUser + ":" + c.GetString(ctxUserID)
}
