package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/middleware"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/service"
)

const maxFormMemory = 1 << 20 // 1MB

// AuthHandler handles registration, login and profile requests.
type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /register. The body is a form, urlencoded or
// multipart (the latter when a profile photo is attached).
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid form body"))
		return
	}

	req := model.RegisterRequest{
		FullName:        r.FormValue("fullName"),
		DOB:             r.FormValue("dob"),
		Email:           r.FormValue("email"),
		Mobile:          r.FormValue("mobile"),
		Country:         r.FormValue("country"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		ConsentGmail:    formBool(r, "consentGmail"),
		ConsentPhone:    formBool(r, "consentPhone"),
	}
	if _, header, err := r.FormFile("profilePhoto"); err == nil {
		req.PhotoFilename = header.Filename
	}

	msg, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFullNameRequired),
			errors.Is(err, service.ErrDOBRequired),
			errors.Is(err, service.ErrCountryRequired),
			errors.Is(err, service.ErrPasswordRequired),
			errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrUserExists):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse(msg))
}

// HandleToken handles POST /token (form: username, password).
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid form body"))
		return
	}

	resp, err := h.service.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProfile handles GET /profile.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

// HandleFirebaseLogin handles POST /auth/firebase (JSON: id_token).
func (h *AuthHandler) HandleFirebaseLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)

	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.FederatedLogin(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIDToken) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func formBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.FormValue(key))
	return err == nil && v
}
