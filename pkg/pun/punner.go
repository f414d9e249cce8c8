package pun

import (
	"fmt"

	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

// Punner is the entry point for a host such as a chat bot: it loads
// the dictionary on the first request and answers every request from
// the same read-only Index.
type Punner struct {
	dict *phono.Lazy
	conv g2p.Converter
	opts []Option
}

// NewPunner returns a Punner over dict. opts apply to every
// Synthesizer it creates.
func NewPunner(dict *phono.Lazy, conv g2p.Converter, opts ...Option) *Punner {
	return &Punner{dict: dict, conv: conv, opts: opts}
}

// Pun returns a pun for utterance. The boolean is false when no
// covering exists. The only error is a dictionary load failure, which
// is returned again on every call.
func (p *Punner) Pun(utterance string) (string, bool, error) {
	ix, err := p.dict.Get()
	if err != nil {
		return "", false, fmt.Errorf("load dictionary: %w", err)
	}
	text, ok := New(ix, p.conv, p.opts...).Synthesize(utterance)
	return text, ok, nil
}
