package app

import (
	"fmt"

	"calc/internal/domain"
	"calc/internal/engine/accumulator"
	"calc/internal/engine/editor"
	"calc/internal/services/calculator"
	"calc/internal/store"
)

// Wire bundles the engine, store and service for the CLI.
type Wire struct {
	Engine  domain.Engine
	History domain.HistoryStore
	Calc    *calculator.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	hs := store.NewFileStore(cfg.Home, cfg.HistoryLimit)

	var eng domain.Engine
	switch cfg.Policy {
	case domain.PolicyImmediate:
		eng = accumulator.New()
	case domain.PolicyDeferred, "":
		eng = editor.New()
	default:
		return nil, fmt.Errorf("unknown policy %q", cfg.Policy)
	}

	return &Wire{
		Engine:  eng,
		History: hs,
		Calc:    calculator.New(eng, hs),
	}, nil
}
