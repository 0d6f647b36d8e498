package impl

import (
	"io"
	"log/slog"

	"recipeme/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(equipment ...string) *config.Config {
	cfg := &config.Config{Recipes: &config.RecipesConfig{AdditionalEquipment: equipment}}
	cfg.HTTP.BaseURL = "http://recipes.test"

	return cfg
}
