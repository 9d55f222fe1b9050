// Package rpc exposes the service operations as named procedures carried
// over a single HTTP endpoint. Each procedure checks its own input shape
// before calling the service layer and translates domain failures into a
// structured error envelope.
package rpc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/service"
	"link-in-bio/pkg/validate"

	"github.com/go-chi/chi/v5"
)

const (
	KindValidation   = "VALIDATION"
	KindNotFound     = "NOT_FOUND"
	KindUnauthorized = "UNAUTHORIZED"
	KindInternal     = "INTERNAL"
)

type ErrorBody struct {
	Kind    string               `json:"kind"`
	Message string               `json:"message"`
	Fields  validate.FieldErrors `json:"fields,omitempty"`
}

type Envelope struct {
	Result any        `json:"result,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

type procedure struct {
	gated bool
	fn    http.HandlerFunc
}

type Handler struct {
	links      *service.LinkService
	pages      *service.PageService
	auth       *service.AuthService
	authmw     *middleware.Auth
	logger     *logging.Logger
	procedures map[string]procedure
}

func NewHandler(links *service.LinkService, pages *service.PageService, auth *service.AuthService, authmw *middleware.Auth, logger *logging.Logger) *Handler {
	h := &Handler{
		links:  links,
		pages:  pages,
		auth:   auth,
		authmw: authmw,
		logger: logger,
	}
	h.procedures = map[string]procedure{
		"links.getAll":        {fn: h.linksGetAll},
		"links.getById":       {fn: h.linksGetByID},
		"links.search":        {fn: h.linksSearch},
		"links.create":        {gated: true, fn: h.linksCreate},
		"links.update":        {gated: true, fn: h.linksUpdate},
		"links.delete":        {gated: true, fn: h.linksDelete},
		"links.mine":          {gated: true, fn: h.linksMine},
		"pages.getAll":        {fn: h.pagesGetAll},
		"pages.getByUsername": {fn: h.pagesGetByUsername},
		"auth.login":          {fn: h.authLogin},
	}
	return h
}

// Dispatch routes a call to the procedure named in the URL, running the
// auth middleware first for gated procedures.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "procedure")
	proc, ok := h.procedures[name]
	if !ok {
		h.writeError(w, http.StatusNotFound, &ErrorBody{
			Kind:    KindNotFound,
			Message: "unknown procedure: " + name,
		})
		return
	}

	r = r.WithContext(logging.WithCorrelationID(r.Context()))
	if proc.gated {
		h.authmw.Authenticate(proc.fn).ServeHTTP(w, r)
		return
	}
	proc.fn(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func SetupRoutes(r *chi.Mux, h *Handler) {
	r.Get("/health", h.HealthCheck)
	r.Post("/rpc/{procedure}", h.Dispatch)
}

// decode fills in from the request body. An absent body decodes to the
// zero input, which suits procedures with no required fields.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, in any) bool {
	err := json.NewDecoder(r.Body).Decode(in)
	if err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, &ErrorBody{
			Kind:    KindValidation,
			Message: "invalid request body",
		})
		return false
	}
	return true
}

func (h *Handler) writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Envelope{Result: result})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, body *ErrorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{Error: body})
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	h.writeError(w, http.StatusNotFound, &ErrorBody{Kind: KindNotFound, Message: message})
}

// writeDomainError translates service and store failures into envelope
// kinds: field validation, missing caller identity, everything else opaque.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		h.writeError(w, http.StatusBadRequest, &ErrorBody{
			Kind:    KindValidation,
			Message: "invalid input",
			Fields:  verr.Fields,
		})
	case errors.Is(err, service.ErrNotAuthenticated):
		h.writeError(w, http.StatusUnauthorized, &ErrorBody{
			Kind:    KindUnauthorized,
			Message: "authentication required",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, &ErrorBody{
			Kind:    KindUnauthorized,
			Message: "invalid email or password",
		})
	default:
		h.logger.Error(r.Context(), "procedure failed", "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusInternalServerError, &ErrorBody{
			Kind:    KindInternal,
			Message: "internal error",
		})
	}
}
