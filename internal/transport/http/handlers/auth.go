package handlers

import (
	"errors"
	"io"
	"net/http"

	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
)

type loginURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

type microsoftTokenRequest struct {
	Code         string `json:"code"`
	CodeVerifier string `json:"code_verifier"`
	RedirectURI  string `json:"redirect_uri"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken *string `json:"refresh_token"`
}

func (h *Handlers) LoginURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	u, err := h.svc.LoginURL(q.Get("code_challenge"), q.Get("state"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginURLResponse{AuthorizationURL: u})
}

func (h *Handlers) MicrosoftToken(w http.ResponseWriter, r *http.Request) {
	var in microsoftTokenRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pair, err := h.svc.LoginMicrosoft(r.Context(), in.Code, in.CodeVerifier, in.RedirectURI)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pair, err := h.svc.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Logout принимает пустое тело или {"refresh_token": ...}.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var in logoutRequest
	if err := decodeStrict(w, r, &in); err != nil && !errors.Is(err, io.EOF) {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.Logout(r.Context(), a, in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, a.User.Profile())
}
