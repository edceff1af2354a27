// Package tokens estimates the token footprint of a bundled artifact.
package tokens

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const (
	defaultModel     = "gpt-4o"
	fallbackEncoding = "cl100k_base"
)

// Counter counts tokens using a fixed model encoding.
type Counter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewCounter returns a counter for the given model. Unknown models fall back
// to the cl100k_base encoding.
func NewCounter(model string) (*Counter, error) {
	model = strings.TrimSpace(strings.ToLower(model))
	if model == "" {
		model = defaultModel
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err == nil && encoding != nil {
		return &Counter{encoding: encoding, name: model}, nil
	}

	fallback, fallbackErr := tiktoken.GetEncoding(fallbackEncoding)
	if fallbackErr != nil {
		return nil, fmt.Errorf("failed to initialize fallback tokenizer: %w", fallbackErr)
	}
	return &Counter{encoding: fallback, name: fallbackEncoding}, nil
}

// Name returns the model or encoding name the counter resolved to.
func (c *Counter) Name() string {
	return c.name
}

// Count returns the number of tokens in input.
func (c *Counter) Count(input string) int {
	return len(c.encoding.Encode(input, nil, nil))
}
