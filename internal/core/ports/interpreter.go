package ports

import "context"

// Interpreter sends lyric text to a text-generation backend and returns the
// generated prose. One atomic call: text in, text out, no streaming.
type Interpreter interface {
	Interpret(ctx context.Context, lyrics string) (string, error)
	Model() string
}
