package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

func (h *Handlers) FetchTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	tags, err := h.Suggest.Tags(r.Context(), req.Query)
	if err != nil {
		log.Printf("tags failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}
