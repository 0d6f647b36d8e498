package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a document displayed verbatim by the presentation layer.
// Recipes are only ever read by this application.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cuisine     string
	Author      string
	PrepMinutes int
	CookMinutes int
	Serves      int
	Ingredients []string
	Method      []string
	Equipment   []string
	ImageURL    string
	CreatedAt   time.Time
}

// TotalMinutes is the preparation plus cooking time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}
