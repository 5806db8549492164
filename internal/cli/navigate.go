package cli

// Messages handled by the appModel itself rather than by a view.

// ambientTickMsg advances the decorative animation by one frame.
type ambientTickMsg struct{}
