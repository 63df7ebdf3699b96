package session

import (
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Action is a command a collaborator dispatches into a Session.
type Action interface {
	sessionAction()
}

// SelectAction clicks the cell at At.
type SelectAction struct {
	At core.Coord
}

func (SelectAction) sessionAction() {}

// ToggleFlaggingAction switches between reveal and flag mode.
type ToggleFlaggingAction struct{}

func (ToggleFlaggingAction) sessionAction() {}

// RestartAction replaces the game with a fresh one of the same shape.
type RestartAction struct{}

func (RestartAction) sessionAction() {}

// StartAction replaces the game with one built from Config.
// Preset is an optional label carried into stats.
type StartAction struct {
	Preset string
	Config core.BoardConfig
}

func (StartAction) sessionAction() {}

// PresetAction starts a game from a registered preset.
func PresetAction(p registry.Preset) StartAction {
	return StartAction{Preset: p.ID, Config: p.Board}
}
