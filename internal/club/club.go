package club

import "errors"

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Player is a club member. CategoryID is empty until staff assign one.
type Player struct {
	ID           string   `json:"id" validate:"required" toml:"id"`
	DNI          string   `json:"dni" validate:"required" toml:"dni"`
	Name         string   `json:"name" validate:"required" toml:"name"`
	CategoryID   string   `json:"categoryId,omitempty" toml:"category_id"`
	BodyWeightKg *float64 `json:"bodyWeightKg,omitempty" validate:"omitempty,gt=0,lt=400" toml:"body_weight_kg"`
}

// Category is a team or age group (M15, M17, ...) that routines target.
type Category struct {
	ID   string `json:"id" validate:"required" toml:"id"`
	Name string `json:"name" validate:"required" toml:"name"`
}

type Attendance struct {
	PlayerID string `json:"playerId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Present  bool   `json:"present"`
}
