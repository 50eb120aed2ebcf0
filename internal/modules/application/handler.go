package application

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amherst-artisan-market/market-backend/internal/common"
	"github.com/amherst-artisan-market/market-backend/internal/web"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the application routes. The public front-end submits
// applications; everything else is the admin dashboard and sits behind the
// guard middleware.
func (h *Handler) RegisterRoutes(router *chi.Mux, guard func(http.Handler) http.Handler) {
	router.Post("/vendor-applications", h.submit)
	router.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/vendor-applications", h.list)
		r.Get("/vendor-applications/stats", h.stats)
		r.Put("/vendor-applications/{id}", h.update)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, common.NewError(common.CodeValidation, "Invalid request body", err), "")
		return
	}

	app, emailSent, err := h.service.Submit(r.Context(), req)
	if err != nil {
		web.Error(w, err, "Failed to process application. Please try again.")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"applicationId": app.ID,
		"message":       "Application submitted successfully!",
		"emailSent":     emailSent,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.ListAll(r.Context())
	if err != nil {
		web.Error(w, err, "Failed to fetch applications")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"applications": apps,
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, common.NewError(common.CodeValidation, "Invalid request body", err), "")
		return
	}

	app, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		web.Error(w, err, "Failed to update application")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"application": app,
		"message":     "Application updated successfully!",
	})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		web.Error(w, err, "Failed to fetch statistics")
		return
	}

	web.JSON(w, http.StatusOK, stats)
}
