package model

// Glyphs used by the prompt and the renderers.
const (
	IconPrompt    = "➜" // Prompt arrow, green after success and red after a failure
	IconHome      = "~" // Working path symbol at the content root
	IconInterrupt = "^C"
)
