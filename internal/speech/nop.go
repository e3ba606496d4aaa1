package speech

import (
	"context"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

// Nop is a SpeechRenderer that renders nothing. It stands in when speech is
// disabled so callers never branch on a nil renderer.
type Nop struct{}

var _ ports.SpeechRenderer = Nop{}

// Render always returns an empty URL and no error.
func (Nop) Render(context.Context, string) (string, error) { return "", nil }
