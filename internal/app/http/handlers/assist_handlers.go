package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"costindex/go_backend/internal/app/http/handlers/assist"
)

type chatRequest struct {
	Message string      `json:"message"`
	UserID  interface{} `json:"userId"`
	Context string      `json:"context"`
}

func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	log.Printf("chat user=%v message_len=%d context=%v", req.UserID, len(req.Message), req.Context != "")
	reply, err := h.AI.Chat(r.Context(), req.Message, req.Context)
	if err != nil {
		log.Printf("chat failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get response from AI assistant: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handlers) Alternatives(w http.ResponseWriter, r *http.Request) {
	var product assist.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(product.ProductName) == "" || strings.TrimSpace(product.Price) == "" {
		writeError(w, http.StatusBadRequest, "Product name and price are required")
		return
	}

	log.Printf("alternatives product=%q", product.ProductName)
	result, err := h.AI.SuggestAlternatives(r.Context(), product)
	if err != nil {
		log.Printf("alternatives failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate product alternatives: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type analyzeProductRequest struct {
	assist.Product
	Location string `json:"location"`
}

func (h *Handlers) AnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	var req analyzeProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ProductName) == "" || strings.TrimSpace(req.Price) == "" {
		writeError(w, http.StatusBadRequest, "Product name and price are required")
		return
	}

	h.analyzeProduct(w, r, req.Product, req.Location)
}

type analyzeRequest struct {
	assist.Product
	Location    string `json:"location"`
	PageContent string `json:"pageContent"`
	PageURL     string `json:"pageUrl"`
}

var priceRe = regexp.MustCompile(`\$\d+\.\d{2}`)

// Analyze accepts either scraped product fields or raw page content. Page
// content falls back to crude extraction: first line as the name, first
// dollar amount as the price, page host as the store.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var product assist.Product
	switch {
	case strings.TrimSpace(req.ProductName) != "":
		product = assist.Product{
			ProductName: req.ProductName,
			Price:       orDefault(req.Price, "$0.00"),
			Store:       orDefault(req.Store, "Unknown Store"),
			Category:    req.Category,
			URL:         orDefault(req.URL, "https://example.com"),
			Description: orDefault(req.Description, "No description provided"),
		}
	case strings.TrimSpace(req.PageContent) != "":
		product = productFromPage(req.PageContent, req.PageURL)
	default:
		writeError(w, http.StatusBadRequest, "invalid product data format")
		return
	}

	h.analyzeProduct(w, r, product, req.Location)
}

func (h *Handlers) analyzeProduct(w http.ResponseWriter, r *http.Request, product assist.Product, location string) {
	if location == "" {
		location = h.Cfg.DefaultLocation
	}

	log.Printf("analyze product=%q location=%q", product.ProductName, location)
	result, err := h.AI.AnalyzeProduct(r.Context(), product, location)
	if err != nil {
		log.Printf("analyze failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze product page: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) AnalyzeBasket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []assist.BasketLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Items == nil {
		writeError(w, http.StatusBadRequest, "Request body must contain an items array")
		return
	}

	log.Printf("analyze-basket items=%d", len(req.Items))
	result, err := h.AI.AnalyzeBasket(r.Context(), req.Items)
	if err != nil {
		log.Printf("analyze-basket failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze shopping basket: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func productFromPage(pageContent, pageURL string) assist.Product {
	name := strings.TrimSpace(strings.SplitN(pageContent, "\n", 2)[0])
	if name == "" {
		name = "Unknown Product"
	}
	price := priceRe.FindString(pageContent)
	if price == "" {
		price = "$0.00"
	}
	store := "Unknown Store"
	if u, err := url.Parse(pageURL); err == nil && u.Hostname() != "" {
		store = u.Hostname()
	}
	if pageURL == "" {
		pageURL = "https://example.com"
	}
	return assist.Product{
		ProductName: name,
		Price:       price,
		Store:       store,
		URL:         pageURL,
		Description: pageContent,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
