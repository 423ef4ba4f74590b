package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/usecase"
	"github.com/auditx/auditx/pkg/apperror"
)

// AuthHandler handles HTTP requests for authentication and password
// recovery.
type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// RegisterRoutes registers auth routes on the public and protected
// routers.
func (h *AuthHandler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/auth/register", h.Register).Methods("POST")
	public.HandleFunc("/auth/login", h.Login).Methods("POST")
	public.HandleFunc("/auth/forgot-password", h.ForgotPassword).Methods("POST")
	public.HandleFunc("/auth/verify-reset-token", h.VerifyResetToken).Methods("POST")
	public.HandleFunc("/auth/reset-password", h.ResetPassword).Methods("POST")

	protected.HandleFunc("/auth/me", h.Me).Methods("GET")
	protected.HandleFunc("/auth/change-password", h.ChangePassword).Methods("POST")
}

// Register handles the combined user + company signup
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usecase.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	user, err := h.authUseCase.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registro exitoso. Su cuenta será activada por el administrador.",
		"user":    user,
	})
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	result, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": result.Token,
		"token_type":   "bearer",
		"user":         result.User,
	})
}

// Me returns the caller's own user record
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r.Context())

	user, err := h.authUseCase.Me(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ChangePassword verifies the current password before replacing it
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	if err := h.authUseCase.ChangePassword(r.Context(), callerFrom(r.Context()), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Contraseña actualizada exitosamente")
}

// ForgotPassword issues a reset token. The response is identical
// whether or not the account exists.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	if err := h.authUseCase.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Si el correo existe, recibirá un enlace de recuperación")
}

// VerifyResetToken checks a token before the reset form is shown
func (h *AuthHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	email, err := h.authUseCase.VerifyResetToken(r.Context(), req.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// ResetPassword consumes a valid token and replaces the password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.NewBadRequest("invalid request body"))
		return
	}

	if err := h.authUseCase.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Contraseña restablecida exitosamente")
}
