package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. List columns are stored as JSON arrays.
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Cuisine     string    `gorm:"type:varchar(100)"`
	Author      string    `gorm:"type:varchar(100)"`
	PrepMinutes int
	CookMinutes int
	Serves      int
	Ingredients []string `gorm:"type:jsonb;serializer:json"`
	Method      []string `gorm:"type:jsonb;serializer:json"`
	Equipment   []string `gorm:"type:jsonb;serializer:json"`
	ImageURL    string   `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
