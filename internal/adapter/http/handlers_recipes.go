package adapthttp

import (
	"errors"
	"net/http"

	"recipeshare/internal/domain"
)

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecipes(w, r)
	case http.MethodPost:
		s.createRecipe(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, projectRecipes(recipes))
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user := userFrom(r.Context())
	recipe, err := s.recipes.Create(r.Context(), user.ID, req.Title, req.Instructions, req.MinutesToComplete)
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeValidationErrors(w)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	recipe.User = user
	writeJSON(w, http.StatusCreated, projectRecipe(recipe))
}
