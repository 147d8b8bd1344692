package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/edugames-catalog/internal/domain"
	"github.com/edugames-catalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler provides HTTP handlers for the catalog API
type Handler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(service *service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// messageResponse is the body for status and error responses
type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(corsMiddleware)

	// Health check
	r.Get("/health", h.HealthCheck)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.ListGames)
			r.Get("/{gameID}", h.GetGame)
			r.Post("/{gameID}/play", h.PlayGame)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Get("/{categoryID}", h.GetCategory)
		})

		r.Get("/leaderboard", h.GetLeaderboard)
		r.Post("/contact", h.SubmitContact)

		// Auth placeholders
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
	})

	return r
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeMessage writes a short status or error message response
func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, messageResponse{Message: message})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// ListGames returns games, filtered by search query or category.
// A search query takes precedence over a category filter.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	games, err := h.service.ListGames(r.Context(), search, category)
	if err != nil {
		h.logger.Error("failed to fetch games", "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch games")
		return
	}

	h.writeJSON(w, http.StatusOK, games)
}

// GetGame returns a game by id
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	game, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			h.writeMessage(w, http.StatusNotFound, "Game not found")
			return
		}
		h.logger.Error("failed to fetch game", "game_id", gameID, "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch game")
		return
	}

	h.writeJSON(w, http.StatusOK, game)
}

// PlayGame increments a game's play count. A play recorded against a
// nonexistent game is a silent no-op and still reports success.
func (h *Handler) PlayGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	if err := h.service.RecordPlay(r.Context(), gameID); err != nil {
		h.logger.Error("failed to increment play count", "game_id", gameID, "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to increment play count")
		return
	}

	h.writeMessage(w, http.StatusOK, "Play count incremented")
}

// ListCategories returns all categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch categories", "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	h.writeJSON(w, http.StatusOK, categories)
}

// GetCategory returns a category by id
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			h.writeMessage(w, http.StatusNotFound, "Category not found")
			return
		}
		h.logger.Error("failed to fetch category", "category_id", categoryID, "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}

	h.writeJSON(w, http.StatusOK, category)
}

// GetLeaderboard returns ranked entries for the requested category and
// period, each decorated with the referenced user's public profile
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	period := domain.Period(r.URL.Query().Get("period"))

	entries, err := h.service.GetLeaderboard(r.Context(), category, period)
	if err != nil {
		h.logger.Error("failed to fetch leaderboard", "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	h.writeJSON(w, http.StatusOK, entries)
}

// SubmitContact validates and stores a contact form message
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var insert domain.InsertContactMessage
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "Invalid contact form data")
		return
	}

	message, err := h.service.SubmitContact(r.Context(), insert)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidContactMessage) {
			h.writeMessage(w, http.StatusBadRequest, "Invalid contact form data")
			return
		}
		h.logger.Error("failed to store contact message", "error", err)
		h.writeMessage(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	h.writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Message sent successfully",
		ID:      message.ID,
	})
}

// Register is a placeholder for user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, http.StatusNotImplemented, "Registration not yet implemented")
}

// Login is a placeholder for user login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, http.StatusNotImplemented, "Login not yet implemented")
}
