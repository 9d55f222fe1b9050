package rpc

import (
	"net/http"

	"link-in-bio/pkg/validate"
)

func (h *Handler) pagesGetAll(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.GetAll(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, pages)
}

type usernameInput struct {
	Username string `json:"username"`
}

func (h *Handler) pagesGetByUsername(w http.ResponseWriter, r *http.Request) {
	var in usernameInput
	if !h.decode(w, r, &in) {
		return
	}
	if in.Username == "" {
		h.writeError(w, http.StatusBadRequest, &ErrorBody{
			Kind:    KindValidation,
			Message: "invalid input",
			Fields:  validate.FieldErrors{"username": {"Username is required"}},
		})
		return
	}

	page, err := h.pages.View(r.Context(), in.Username)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if page == nil {
		h.notFound(w, "page not found")
		return
	}
	h.writeResult(w, page)
}
