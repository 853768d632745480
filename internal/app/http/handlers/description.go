package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

func (h *Handlers) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	if !h.RapidAPI.Configured() {
		writeError(w, http.StatusInternalServerError, "description service is not configured")
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	description, err := h.RapidAPI.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("generate-description failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"description": description})
}
