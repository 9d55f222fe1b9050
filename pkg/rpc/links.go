package rpc

import (
	"net/http"

	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/validate"
)

func (h *Handler) linksGetAll(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.GetAll(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, links)
}

type idInput struct {
	ID string `json:"id"`
}

func (h *Handler) linksGetByID(w http.ResponseWriter, r *http.Request) {
	var in idInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := validate.LinkID(in.ID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	link, err := h.links.GetByID(r.Context(), in.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if link == nil {
		h.notFound(w, "link not found")
		return
	}
	h.writeResult(w, link)
}

type searchInput struct {
	Query string `json:"query"`
}

func (h *Handler) linksSearch(w http.ResponseWriter, r *http.Request) {
	var in searchInput
	if !h.decode(w, r, &in) {
		return
	}

	links, err := h.links.Search(r.Context(), in.Query)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, links)
}

func (h *Handler) linksCreate(w http.ResponseWriter, r *http.Request) {
	var in validate.CreateLinkInput
	if !h.decode(w, r, &in) {
		return
	}
	// Procedure-level shape check; the store re-validates before mutating.
	if err := validate.CreateLink(in); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	link, err := h.links.Create(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, link)
}

func (h *Handler) linksUpdate(w http.ResponseWriter, r *http.Request) {
	var in validate.UpdateLinkInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := validate.UpdateLink(in); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	link, err := h.links.Update(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if link == nil {
		h.notFound(w, "link not found")
		return
	}
	h.writeResult(w, link)
}

func (h *Handler) linksDelete(w http.ResponseWriter, r *http.Request) {
	var in idInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := validate.LinkID(in.ID); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	link, err := h.links.Delete(r.Context(), in.ID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if link == nil {
		h.notFound(w, "link not found")
		return
	}
	h.writeResult(w, link)
}

func (h *Handler) linksMine(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.ByOwner(r.Context(), middleware.CallerID(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, links)
}
