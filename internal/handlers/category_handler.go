package handlers

import (
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/repository"
)

// CategoryHandler serves the static category reference list.
type CategoryHandler struct {
	repo   repository.CategoryRepository
	logger *slog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(repo repository.CategoryRepository, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		repo:   repo,
		logger: logger,
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
