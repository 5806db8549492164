package cli

import "github.com/charmbracelet/bubbles/key"

// Global bindings, available on every stage.
var (
	keyMusic = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "music"))
	keyQuit  = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// Lab bench bindings.
var (
	keyPrev  = key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←/→", "choose"))
	keyNext  = key.NewBinding(key.WithKeys("right", "down", "l", "j"))
	keyPick  = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-3", "pick"))
	keyStart = key.NewBinding(key.WithKeys("enter", "t", " "), key.WithHelp("enter", "start final test"))
)

// Diagnosis bindings.
var keyAgain = key.NewBinding(key.WithKeys("n", "enter", "r"), key.WithHelp("n", "new experiment"))
