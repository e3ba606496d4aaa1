package ports

import "context"

// SpeechRenderer turns response text into a fetchable audio resource.
//
// Render returns the URL path of the rendered audio, or "" when there is
// nothing to render (empty text). Rendering is best-effort: a failure must
// never abort the conversational response, so callers log the error and
// respond without audio.
type SpeechRenderer interface {
	Render(ctx context.Context, text string) (string, error)
}
