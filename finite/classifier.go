package finite

import (
	"github.com/on-the-ground/isnumber/internal/coerce"
	"github.com/on-the-ground/isnumber/internal/memo"
)

// Classifier applies fixed Options and remembers the outcome of text coercion,
// which pays off when the same numeric strings are classified repeatedly.
// It is safe for concurrent use.
type Classifier struct {
	opts     Options
	toNumber func(string) float64
}

// NewClassifier returns a Classifier caching up to cacheSize coerced strings per generation.
// It panics if cacheSize is 0.
func NewClassifier(opts Options, cacheSize uint32) *Classifier {
	return &Classifier{
		opts:     opts,
		toNumber: memo.Tableize(coerce.ToNumber, cacheSize),
	}
}

func (c *Classifier) Options() Options {
	return c.opts
}

// IsNumber returns the same result as IsNumber(value, c.Options()).
func (c *Classifier) IsNumber(value any) bool {
	return isNumber(value, c.opts, c.toNumber)
}
