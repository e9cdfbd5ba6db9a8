package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/2beens/clubtrainer/internal/club"
	"github.com/2beens/clubtrainer/internal/routines"
	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/wellness"
	"github.com/2beens/clubtrainer/pkg"
)

// SeedFile is the catalog a club starts from: exercise templates, categories
// and the roster. Rules are optional; without them the defaults apply.
type SeedFile struct {
	Templates  []routines.ExerciseTemplate `toml:"templates"`
	Categories []club.Category             `toml:"categories"`
	Players    []club.Player               `toml:"players"`
	Rules      []wellness.Rule             `toml:"rules"`
}

type seedSummary struct {
	Templates  int
	Categories int
	Players    int
	Rules      int
}

func loadSeedFile(path string) (SeedFile, error) {
	var seedFile SeedFile
	if _, err := toml.DecodeFile(path, &seedFile); err != nil {
		return SeedFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return seedFile, nil
}

// validate reports every invalid record at once, so a seed file is fixed in
// one pass.
func (f SeedFile) validate() error {
	var errs error
	for i, tpl := range f.Templates {
		if err := pkg.ValidateStruct(tpl); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("template #%d [%s]: %w", i, tpl.ID, err))
		}
	}
	categories := make(map[string]bool, len(f.Categories))
	for i, category := range f.Categories {
		if err := pkg.ValidateStruct(category); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("category #%d [%s]: %w", i, category.ID, err))
		}
		categories[category.ID] = true
	}
	for i, player := range f.Players {
		if err := pkg.ValidateStruct(player); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("player #%d [%s]: %w", i, player.ID, err))
		}
		if player.CategoryID != "" && !categories[player.CategoryID] {
			errs = multierr.Append(errs, fmt.Errorf("player #%d [%s]: unknown category %s", i, player.ID, player.CategoryID))
		}
	}
	return errs
}

func seed(ctx context.Context, st store.Store, f SeedFile) (seedSummary, error) {
	if err := f.validate(); err != nil {
		return seedSummary{}, err
	}

	rules := make([]wellness.Rule, 0, len(f.Rules))
	for i, rule := range f.Rules {
		normalized, err := wellness.NormalizeRule(rule)
		if err != nil {
			return seedSummary{}, fmt.Errorf("rule #%d: %w", i, err)
		}
		rules = append(rules, normalized)
	}

	routinesRepo := routines.NewRepo(st)
	for _, tpl := range f.Templates {
		if err := routinesRepo.PutTemplate(ctx, tpl); err != nil {
			return seedSummary{}, fmt.Errorf("put template %s: %w", tpl.ID, err)
		}
	}

	clubRepo := club.NewRepo(st)
	for _, category := range f.Categories {
		if err := clubRepo.PutCategory(ctx, category); err != nil {
			return seedSummary{}, fmt.Errorf("put category %s: %w", category.ID, err)
		}
	}
	for _, player := range f.Players {
		if err := clubRepo.PutPlayer(ctx, player); err != nil {
			return seedSummary{}, fmt.Errorf("put player %s: %w", player.ID, err)
		}
	}

	if len(rules) > 0 {
		if err := wellness.NewRepo(st).SaveRules(ctx, rules); err != nil {
			return seedSummary{}, fmt.Errorf("save wellness rules: %w", err)
		}
	}

	return seedSummary{
		Templates:  len(f.Templates),
		Categories: len(f.Categories),
		Players:    len(f.Players),
		Rules:      len(rules),
	}, nil
}
