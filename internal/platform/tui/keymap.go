package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cupcake/internal/config"
	"github.com/vovakirdan/tui-cupcake/internal/core"
)

// holdTimeout is how long a movement key counts as held without a key
// repeat. Terminals report presses only, so releases are inferred.
const holdTimeout = 550 * time.Millisecond

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Debug   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Debug, k.Quit},
	}
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Left:    binding(cfg.MoveLeft, "left"),
		Right:   binding(cfg.MoveRight, "right"),
		Jump:    binding(cfg.Jump, "jump"),
		Pause:   binding(cfg.Pause, "pause"),
		Restart: binding(cfg.Restart, "restart"),
		Debug: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "debug"),
		),
		Quit: binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// KeyMapper translates Bubble Tea key messages to game actions and infers
// movement key releases.
type KeyMapper struct {
	keys KeyMap

	held     string // Last movement key, empty when released
	lastSeen time.Time
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyToFrame records the action of a key press in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	case core.ActionMoveLeft, core.ActionMoveRight:
		km.held = msg.String()
		km.lastSeen = now
	}
	frame.Set(action)
	return false
}

// Release adds a Stop action to frame once the held movement key has not
// repeated for holdTimeout.
func (km *KeyMapper) Release(frame *core.InputFrame, now time.Time) {
	if km.held == "" || now.Sub(km.lastSeen) < holdTimeout {
		return
	}
	km.held = ""
	frame.Set(core.ActionStop)
}

// Holding reports whether a movement key is considered held.
func (km *KeyMapper) Holding() bool {
	return km.held != ""
}
