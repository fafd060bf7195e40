package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/onboard-desk/internal/infra/http/middleware"
	"github.com/xavierca1/onboard-desk/internal/usecase"
)

type AuthHandler struct {
	RegisterUC    *usecase.RegisterUseCase
	LoginUC       *usecase.LoginUseCase
	SetPasswordUC *usecase.SetPasswordUseCase
}

func NewAuthHandler(
	registerUC *usecase.RegisterUseCase,
	loginUC *usecase.LoginUseCase,
	setPasswordUC *usecase.SetPasswordUseCase,
) *AuthHandler {
	return &AuthHandler{
		RegisterUC:    registerUC,
		LoginUC:       loginUC,
		SetPasswordUC: setPasswordUC,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordUpsert("registered")
	writeJSON(w, http.StatusCreated, rec)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.LoginUC.Execute(r.Context(), input.Email, input.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.SetPasswordUC.Execute(r.Context(), email, input.Password); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
