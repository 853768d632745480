package handlers

import (
	"log"
	"net/http"
	"time"
)

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	openai := "missing"
	if h.AI.Client.Configured() {
		openai = "configured"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"message": "API server is running",
		"openai":  openai,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// TestOpenAI runs a real round trip against the completion API so a deployed
// instance can verify its credentials, not just their presence.
func (h *Handlers) TestOpenAI(w http.ResponseWriter, r *http.Request) {
	if !h.AI.Client.Configured() {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "OpenAI API key is not configured",
		})
		return
	}

	reply, err := h.AI.Chat(r.Context(), "Hello, can you give me a very short test response?", "")
	if err != nil {
		log.Printf("openai test failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to communicate with OpenAI API: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "OpenAI API is working correctly",
		"response": reply,
	})
}

type endpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

func (h *Handlers) Endpoints(w http.ResponseWriter, r *http.Request) {
	endpoints := []endpointInfo{
		{Path: "/api/chat", Method: "POST", Description: "Chat with the AI assistant"},
		{Path: "/api/alternatives", Method: "POST", Description: "Get product alternatives"},
		{Path: "/api/analyze", Method: "POST", Description: "Generic page analysis endpoint"},
		{Path: "/api/analyze-product", Method: "POST", Description: "Analyze product details"},
		{Path: "/api/analyze-basket", Method: "POST", Description: "Analyze basket contents"},
		{Path: "/api/basket-items", Method: "GET,POST,PUT,DELETE", Description: "Manage basket items"},
		{Path: "/api/basket-items/export", Method: "GET", Description: "Download the basket as a PDF shopping list"},
		{Path: "/api/auth/signup", Method: "POST", Description: "Create an account"},
		{Path: "/api/auth/login", Method: "POST", Description: "Sign in with email and password"},
		{Path: "/api/db/health", Method: "GET", Description: "Check the database connection"},
		{Path: "/api/tags", Method: "POST", Description: "Fetch search-tag suggestions"},
		{Path: "/api/generate-description", Method: "POST", Description: "Generate a product description"},
		{Path: "/api/ping", Method: "GET", Description: "Check if the API is working"},
		{Path: "/api/test-openai", Method: "GET", Description: "Run a live OpenAI connectivity check"},
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"endpoints": endpoints})
}
