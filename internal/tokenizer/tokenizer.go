// Package tokenizer counts tokens the way the configured byte-pair encoding
// would split text. Handlers depend on the Tokenizer interface so counting
// can be stubbed in tests.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Tokenizer counts the tokens of exact text under a fixed encoding.
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	Count(text string) (int, error)
}

// TikToken implements Tokenizer on top of tiktoken-go.
type TikToken struct {
	enc *tiktoken.Tiktoken
}

// New returns a TikToken for the named encoding, for instance "cl100k_base".
// The encoding tables are loaded once; the returned value is read-only
// afterwards and safe to share across requests.
func New(encoding string) (*TikToken, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: unknown encoding %q: %w", encoding, err)
	}
	return &TikToken{enc: enc}, nil
}

// Count returns the number of tokens the encoding produces for text.
// The text is passed through verbatim: no trimming, casing or normalization.
func (t *TikToken) Count(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}
