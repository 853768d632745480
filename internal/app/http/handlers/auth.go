package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"costindex/go_backend/internal/infra/supabase"
)

type signupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if !h.Supabase.Configured() {
		writeError(w, http.StatusInternalServerError, "database service is not configured")
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := h.Supabase.SignUp(r.Context(), req.Email, req.Password); err != nil {
		log.Printf("signup failed: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.Supabase.WaitlistContains(r.Context(), req.Fullname, req.Email)
	if err != nil {
		log.Printf("waitlist lookup failed: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if exists {
		writeJSON(w, http.StatusOK, map[string]string{"message": "User already in waitlist"})
		return
	}

	entry := supabase.WaitlistEntry{
		Name:      req.Fullname,
		Email:     req.Email,
		Provider:  "Email Provider",
		SubStatus: true,
	}
	if err := h.Supabase.InsertWaitlist(r.Context(), entry); err != nil {
		log.Printf("waitlist insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Account created successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if !h.Supabase.Configured() {
		writeError(w, http.StatusInternalServerError, "database service is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.Supabase.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("login failed: %v", err)
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"accessToken": session.AccessToken,
		"user":        session.User,
	})
}

func (h *Handlers) DBHealth(w http.ResponseWriter, r *http.Request) {
	if !h.Supabase.Configured() {
		writeError(w, http.StatusInternalServerError, "database service is not configured")
		return
	}

	if err := h.Supabase.Ping(r.Context()); err != nil {
		log.Printf("db health failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Supabase is alive"})
}
