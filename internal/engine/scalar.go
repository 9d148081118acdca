package engine

// Scalar kernel: the portable fallback when no vector tier is selected, and
// the authoritative UTF-8 path for lanes containing non-ASCII bytes. It owns
// the UTF-8 decoder, including continuation of sequences torn across chunk
// boundaries.

// scalarSegment counts a contiguous byte range, accumulating into res and
// advancing the carry. Bytes are accounted by the driver, not here.
func scalarSegment(data []byte, locale Locale, c *Carry, res *Counts) {
	if locale == LocaleUTF8 {
		scalarUTF8(data, c, res)
		return
	}
	for _, b := range data {
		scalarByte(b, c, res)
	}
}

// scalarByte applies single-byte semantics to one byte: one character, width
// one unless newline, ASCII whitespace separates words. Also used for ASCII
// bytes on the UTF-8 path, where the semantics coincide.
func scalarByte(b byte, c *Carry, res *Counts) {
	res.Chars++
	if b == byteNewline {
		res.Lines++
		if c.lineWidth > res.MaxLineLength {
			res.MaxLineLength = c.lineWidth
		}
		c.lineWidth = 0
		c.inWord = false
		return
	}
	c.lineWidth++
	if asciiSpace.Contains(b) {
		c.inWord = false
	} else if !c.inWord {
		res.Words++
		c.inWord = true
	}
}

// invalidByte accounts one rejected byte: one character, width one,
// non-whitespace.
func invalidByte(c *Carry, res *Counts) {
	res.Chars++
	c.lineWidth++
	if !c.inWord {
		res.Words++
		c.inWord = true
	}
}

func scalarUTF8(data []byte, c *Carry, res *Counts) {
	i := 0
	if c.tailLen > 0 {
		i = resolveTail(data, c, res)
		if i < 0 {
			return
		}
	}
	for i < len(data) {
		b := data[i]
		if b < 0x80 {
			scalarByte(b, c, res)
			i++
			continue
		}
		n := seqLen(b)
		if n == 0 {
			// Stray continuation or invalid lead.
			invalidByte(c, res)
			i++
			continue
		}
		if i+n > len(data) {
			if allContinuations(data[i+1:]) {
				// Possibly completable on the next chunk: buffer it.
				c.tailLen = copy(c.tail[:], data[i:])
				return
			}
			// Cannot complete; reject the lead and rescan.
			invalidByte(c, res)
			i++
			continue
		}
		r, ok := decodeSeq(data[i:], n)
		if !ok {
			invalidByte(c, res)
			i++
			continue
		}
		res.Chars++
		c.lineWidth++
		if isUnicodeSpace(r) {
			c.inWord = false
		} else if !c.inWord {
			res.Words++
			c.inWord = true
		}
		i += n
	}
}

// resolveTail completes, or rejects, the multi-byte sequence buffered at the
// end of the previous chunk. Returns the number of bytes of data consumed,
// or -1 when data was exhausted and the sequence is still incomplete.
func resolveTail(data []byte, c *Carry, res *Counts) int {
	need := seqLen(c.tail[0]) // tail[0] is a valid lead by construction
	var buf [4]byte
	n := copy(buf[:], c.tail[:c.tailLen])
	take := need - n
	if take > len(data) {
		take = len(data)
	}
	copy(buf[n:], data[:take])
	// Only continuation bytes may join the buffered prefix; any other byte
	// means the sequence can never decode, and is rejected below.
	if n+take < need && allContinuations(data[:take]) {
		c.tailLen = n + take
		copy(c.tail[:], buf[:c.tailLen])
		return -1
	}
	if r, ok := decodeSeq(buf[:need], need); ok {
		res.Chars++
		c.lineWidth++
		if isUnicodeSpace(r) {
			c.inWord = false
		} else if !c.inWord {
			res.Words++
			c.inWord = true
		}
		c.tailLen = 0
		return take
	}
	// The buffered prefix can never decode. The lead is one invalid
	// character and each buffered continuation is another; the bytes taken
	// from data are left for the main scan.
	tl := c.tailLen
	c.tailLen = 0
	for k := 0; k < tl; k++ {
		invalidByte(c, res)
	}
	return 0
}

// seqLen returns the expected length of a UTF-8 sequence with lead b, or 0
// if b cannot begin a multi-byte sequence. 0xC0/0xC1 (always overlong) and
// 0xF5..0xFF (beyond U+10FFFF) are excluded here so they are rejected
// immediately instead of being buffered as a tail.
func seqLen(b byte) int {
	switch {
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	}
	return 0
}

// allContinuations reports whether every byte of s is a continuation byte.
func allContinuations(s []byte) bool {
	for _, b := range s {
		if !isContinuation(b) {
			return false
		}
	}
	return true
}

// decodeSeq decodes one multi-byte sequence of expected length n from s
// (len(s) >= n, n = seqLen(s[0])). Overlong encodings, surrogates, and
// codepoints beyond U+10FFFF are rejected via the second-byte accept ranges.
func decodeSeq(s []byte, n int) (rune, bool) {
	b0, b1 := s[0], s[1]
	lo, hi := byte(0x80), byte(0xBF)
	switch b0 {
	case 0xE0:
		lo = 0xA0
	case 0xED:
		hi = 0x9F
	case 0xF0:
		lo = 0x90
	case 0xF4:
		hi = 0x8F
	}
	if b1 < lo || b1 > hi {
		return 0, false
	}
	r := rune(b1 & 0x3F)
	switch n {
	case 2:
		return rune(b0&0x1F)<<6 | r, true
	case 3:
		b2 := s[2]
		if !isContinuation(b2) {
			return 0, false
		}
		return rune(b0&0x0F)<<12 | r<<6 | rune(b2&0x3F), true
	default:
		b2, b3 := s[2], s[3]
		if !isContinuation(b2) || !isContinuation(b3) {
			return 0, false
		}
		return rune(b0&0x07)<<18 | r<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F), true
	}
}
