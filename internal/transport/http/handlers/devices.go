package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
)

type registerDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

func (h *Handlers) ListDeviceTokens(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	out, err := h.svc.ListDeviceTokens(r.Context(), a)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) RegisterDeviceToken(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var in registerDeviceRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	tok, err := h.svc.RegisterDeviceToken(r.Context(), a, in.Token, in.Platform)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tok)
}

func (h *Handlers) DeleteDeviceToken(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteDeviceToken(r.Context(), a, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
