package uwc

import (
	"io"

	"github.com/kolkov/uwc/internal/engine"
)

// Version is the uwc version string.
const Version = "0.1.0"

// Counts is the result of a counting pass: Lines is newline bytes, Words is
// whitespace-delimited runs, Chars is decoded characters, and MaxLineLength
// is the width of the longest line.
type Counts = engine.Counts

// Locale selects character decoding and word-separation rules.
type Locale = engine.Locale

const (
	// LocaleSingleByte: one byte per character, ASCII whitespace only.
	LocaleSingleByte = engine.LocaleSingleByte
	// LocaleUTF8: UTF-8 character decoding, Unicode whitespace.
	LocaleUTF8 = engine.LocaleUTF8
)

// Count counts a fully-owned buffer.
func Count(data []byte, locale Locale) Counts {
	return engine.Count(data, locale)
}

// Merge combines two results into a total: counters sum, MaxLineLength takes
// the maximum. Merge is associative with the zero Counts as identity.
func Merge(a, b Counts) Counts {
	return engine.Merge(a, b)
}

// TierName reports the lane tier the CPU probe selected for this process.
func TierName() string {
	return engine.ActiveTier().String()
}

// Counter counts one logical input fed incrementally. It implements
// io.Writer, so an input can be counted with io.Copy. The zero Counter
// counts in single-byte mode; use NewCounter to pick a locale.
type Counter struct {
	locale Locale
	carry  engine.Carry
	total  Counts
}

// NewCounter returns a Counter for one logical input in the given locale.
func NewCounter(locale Locale) *Counter {
	return &Counter{locale: locale}
}

// Write feeds the next chunk of the input. It never fails.
func (c *Counter) Write(p []byte) (int, error) {
	c.total = Merge(c.total, engine.CountStreaming(p, c.locale, &c.carry))
	return len(p), nil
}

// Sum flushes any residue (an incomplete trailing UTF-8 sequence, the final
// unterminated line) and returns the totals. Flushing is idempotent, so Sum
// may be called more than once; Write after Sum starts a fresh word and
// line, as if a new input began.
func (c *Counter) Sum() Counts {
	c.total = Merge(c.total, engine.Flush(c.locale, &c.carry))
	return c.total
}

// Reset clears the totals and carry so the Counter can count another input.
func (c *Counter) Reset() {
	c.carry.Reset()
	c.total = Counts{}
}

// CountReader drains r through a Counter and returns the totals. The buffer
// size comes from cfg; a nil cfg uses defaults.
func CountReader(r io.Reader, locale Locale, cfg *Config) (Counts, error) {
	var conf Config
	if cfg != nil {
		conf = *cfg
	}
	conf.applyDefaults()

	c := NewCounter(locale)
	buf := make([]byte, conf.BufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Write(buf[:n])
		}
		if err == io.EOF {
			return c.Sum(), nil
		}
		if err != nil {
			return c.Sum(), err
		}
	}
}
