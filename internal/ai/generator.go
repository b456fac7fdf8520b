// internal/ai/generator.go
package ai

import "context"

// Generator is the text/vision generation collaborator. Injected so tests can
// substitute a deterministic fake and so the all-or-nothing persona policy in
// the content service can be revisited without touching the client.
type Generator interface {
	// GenerateText produces text from a prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// ExtractImageText lists the text visible in an image.
	ExtractImageText(ctx context.Context, image []byte, mimeType string) (string, error)
}
