package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"recipeshare/internal/domain"
)

// userPayload is the external projection of a user. The password hash and
// internal fields are never part of it.
type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// recipePayload is the external projection of a recipe with its owner nested.
type recipePayload struct {
	ID                int64       `json:"id"`
	Title             string      `json:"title"`
	Instructions      string      `json:"instructions"`
	MinutesToComplete *int        `json:"minutes_to_complete"`
	User              userPayload `json:"user"`
}

func projectUser(u *domain.User) userPayload {
	return userPayload{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

func projectRecipe(r *domain.Recipe) recipePayload {
	p := recipePayload{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
	}
	if r.User != nil {
		p.User = projectUser(r.User)
	}
	return p
}

func projectRecipes(recipes []domain.Recipe) []recipePayload {
	out := make([]recipePayload, 0, len(recipes))
	for i := range recipes {
		out = append(out, projectRecipe(&recipes[i]))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeUnauthorized writes the fixed 401 body used for every
// authentication failure.
func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
}

// writeValidationErrors writes the fixed 422 body. The message is
// deliberately non-specific; per-field detail is not exposed.
func writeValidationErrors(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": []string{"Validation errors"}})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
