package engine

import (
	"encoding/binary"
	"math/bits"
)

// vectorKernel is the generic lane kernel. The reference design has one
// kernel per lane width differing only in movemask strategy; here a single
// kernel is parameterized over both, since a lane mask of up to 64 byte
// positions always fits in a uint64.
type vectorKernel struct {
	width int // lane width in bytes: 16, 32, or 64
	pack  moveMask
}

var (
	kernel16 = &vectorKernel{width: 16, pack: packMul}
	kernel32 = &vectorKernel{width: 32, pack: packMul}
	kernel64 = &vectorKernel{width: 64, pack: packMul}
)

// laneMask returns a mask with the low width bits set.
func laneMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// chunk processes exactly one lane (len(lane) == k.width) in a single pass,
// accumulating into res and advancing the carry.
//
// Hot path: the lane is all-ASCII, or the mode is single-byte. The SWAR
// counters are trusted and no byte is inspected individually. Cold path: in
// UTF-8 mode a lane containing non-ASCII bytes, or following a pending
// multi-byte tail, is yielded wholesale to the scalar kernel, which decodes
// properly across lane boundaries via the carry.
func (k *vectorKernel) chunk(lane []byte, locale Locale, c *Carry, res *Counts) {
	nw := k.width / 8
	var wbuf [8]uint64
	var nonASCII uint64
	for i := 0; i < nw; i++ {
		w := binary.LittleEndian.Uint64(lane[8*i:])
		wbuf[i] = w
		nonASCII |= uint64(k.pack(w&msbMask)) << (8 * i)
	}

	if locale == LocaleUTF8 && (nonASCII != 0 || c.tailLen > 0) {
		scalarSegment(lane, locale, c, res)
		return
	}

	var nl, ws, cont uint64
	for i := 0; i < nw; i++ {
		w := wbuf[i]
		nl |= uint64(k.pack(eqMarks(w, byteNewline))) << (8 * i)
		ws |= uint64(k.pack(spaceMarks(w))) << (8 * i)
		if locale == LocaleUTF8 {
			cont |= uint64(k.pack(continuationMarks(w))) << (8 * i)
		}
	}

	// Characters: every non-continuation byte is one character. On this
	// path UTF-8 lanes are all-ASCII, so cont is zero there; in single-byte
	// mode every byte is a character.
	if locale == LocaleUTF8 {
		res.Chars += k.width - bits.OnesCount64(cont)
	} else {
		res.Chars += k.width
	}

	// Words: a word starts where the whitespace bit is 0 and the bit to its
	// left (in input order) is 1. The predecessor of bit 0 comes from the
	// carry.
	prev := uint64(1)
	if c.inWord {
		prev = 0
	}
	starts := ^ws & (ws<<1 | prev) & laneMask(k.width)
	res.Words += bits.OnesCount64(starts)
	c.inWord = ws>>uint(k.width-1)&1 == 0

	// Lines and line widths. Width is bytes here, which equals codepoints
	// on the all-ASCII UTF-8 path.
	if nl == 0 {
		c.lineWidth += k.width
		return
	}
	res.Lines += bits.OnesCount64(nl)
	prevPos := -1
	for m := nl; m != 0; m &= m - 1 {
		p := bits.TrailingZeros64(m)
		w := p - prevPos - 1
		if prevPos < 0 {
			w += c.lineWidth
		}
		if w > res.MaxLineLength {
			res.MaxLineLength = w
		}
		prevPos = p
	}
	c.lineWidth = k.width - 1 - prevPos
}
