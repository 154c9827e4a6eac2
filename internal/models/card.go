package models

// Card is one tile on the demo admin dashboard. Cards live in a local
// file-backed store, not in MongoDB.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
