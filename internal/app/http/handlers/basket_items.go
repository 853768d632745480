package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"costindex/go_backend/internal/domain/basket"
)

type basketItemPayload struct {
	UserID            *int64  `json:"userId"`
	ProductName       *string `json:"productName"`
	Price             *string `json:"price"`
	Store             *string `json:"store"`
	Category          *string `json:"category"`
	ImageURL          *string `json:"imageUrl"`
	IsRegularPurchase *bool   `json:"isRegularPurchase"`
}

func (h *Handlers) ListBasketItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFilter(w, r)
	if !ok {
		return
	}

	items, err := h.Store.List(r.Context(), userID)
	if err != nil {
		log.Printf("basket list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get basket items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateBasketItem(w http.ResponseWriter, r *http.Request) {
	var payload basketItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item := basket.NewItem{
		UserID:            derefInt64(payload.UserID),
		ProductName:       derefString(payload.ProductName),
		Price:             derefString(payload.Price),
		Store:             derefString(payload.Store),
		Category:          derefString(payload.Category),
		ImageURL:          derefString(payload.ImageURL),
		IsRegularPurchase: derefBool(payload.IsRegularPurchase),
	}

	stored, err := h.Store.Insert(r.Context(), item)
	if err != nil {
		if errors.Is(err, basket.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, "Product name and price are required")
			return
		}
		log.Printf("basket insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create basket item")
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handlers) GetBasketItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, basket.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("basket get failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get basket item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) UpdateBasketItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var upd basket.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.Store.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, basket.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("basket update failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update basket item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeleteBasketItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, basket.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("basket delete failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete basket item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ExportBasketItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFilter(w, r)
	if !ok {
		return
	}

	items, err := h.Store.List(r.Context(), userID)
	if err != nil {
		log.Printf("basket export list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get basket items")
		return
	}

	pdfBytes, err := h.PDF.Generate(items)
	if err != nil {
		log.Printf("basket export pdf failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate shopping list")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping-list.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "item id must be an integer")
		return 0, false
	}
	return id, true
}

func userIDFilter(w http.ResponseWriter, r *http.Request) (*int64, bool) {
	s := r.URL.Query().Get("userId")
	if s == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId must be an integer")
		return nil, false
	}
	return &id, true
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
