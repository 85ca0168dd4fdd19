package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"food-ordering/models"
	"food-ordering/services"
)

// OrderNotifier is implemented by *services.NotificationGateway.
type OrderNotifier interface {
	SendOrderNotification(ctx context.Context, req services.OrderRequest) (string, error)
}

type Handler struct {
	catalog  services.CatalogReader
	notifier OrderNotifier
	log      *slog.Logger
	dev      bool // expose error details in responses
}

func NewHandler(catalog services.CatalogReader, notifier OrderNotifier, log *slog.Logger, dev bool) *Handler {
	return &Handler{catalog: catalog, notifier: notifier, log: log, dev: dev}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World!"))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetFoodData(w http.ResponseWriter, r *http.Request) {
	data, err := h.catalog.FoodData(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "No food items found"})
			return
		}
		h.logError(r, "food_data_failed", "fetch food data", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Server error", Details: h.details(err)})
		return
	}
	h.log.DebugContext(r.Context(), "food data fetched", "action", "food_data_fetched", "items", len(data.FoodItems))
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.Categories(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "No categories found"})
			return
		}
		h.logError(r, "categories_failed", "fetch categories", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to fetch categories", Details: h.details(err)})
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: cats})
}

func (h *Handler) SendOrderNotification(w http.ResponseWriter, r *http.Request) {
	var req services.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.InfoContext(r.Context(), "undecodable order body", "action", "order_rejected", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeJSON(w, http.StatusBadRequest, models.NotificationResponse{Success: false, Error: "Invalid order data."})
		return
	}

	sid, err := h.notifier.SendOrderNotification(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			writeJSON(w, http.StatusBadRequest, models.NotificationResponse{Success: false, Error: "Invalid order data."})
			return
		}
		h.logError(r, "notification_failed", "whatsapp notification failed", err)
		writeJSON(w, http.StatusInternalServerError, models.NotificationResponse{Success: false, Error: "Failed to send WhatsApp message.", Details: h.details(err)})
		return
	}
	writeJSON(w, http.StatusOK, models.NotificationResponse{Success: true, MessageSid: sid})
}

func (h *Handler) details(err error) string {
	if !h.dev {
		return ""
	}
	return err.Error()
}

func (h *Handler) logError(r *http.Request, action, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg, "action", action, "request_id", middleware.GetReqID(r.Context()), "error", err)
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type categoriesResponse struct {
	Success    bool              `json:"success"`
	Categories []models.Category `json:"categories"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
