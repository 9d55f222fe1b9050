package rpc

import (
	"net/http"

	"link-in-bio/pkg/validate"
)

func (h *Handler) authLogin(w http.ResponseWriter, r *http.Request) {
	var in validate.LoginInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := validate.Login(in); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.auth.Login(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeResult(w, result)
}
