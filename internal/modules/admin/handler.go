package admin

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

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/admin/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, common.NewError(common.CodeValidation, "Invalid request body", err), "")
		return
	}

	session, err := h.service.Login(r.Context(), req.Password)
	if err != nil {
		web.Error(w, err, "Failed to process login")
		return
	}

	web.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}
