package engine

// Chunk driver: slices input into full lanes plus a tail, dispatches to the
// selected kernel, and threads the carry across calls.

// Count counts a fully-owned buffer: carry state is internal and residue is
// flushed before returning.
func Count(data []byte, locale Locale) Counts {
	var c Carry
	res := CountStreaming(data, locale, &c)
	return Merge(res, Flush(locale, &c))
}

// CountStreaming counts one chunk of a logical input. Callers feed
// successive chunks with the same carry and finally call Flush exactly once.
// The counts returned cover only what this chunk resolved; bytes buffered
// into the carry as an incomplete UTF-8 sequence are counted when they
// resolve, or at Flush.
func CountStreaming(data []byte, locale Locale, c *Carry) Counts {
	return countStreamingTier(data, locale, c, ActiveTier())
}

func countStreamingTier(data []byte, locale Locale, c *Carry, t Tier) Counts {
	var res Counts
	res.Bytes = len(data)
	i := 0
	if k := kernelFor(t); k != nil {
		for ; i+k.width <= len(data); i += k.width {
			k.chunk(data[i:i+k.width], locale, c, &res)
		}
	}
	if i < len(data) {
		scalarSegment(data[i:], locale, c, &res)
	}
	return res
}

// Flush realizes the residue of a logical input: each byte of a pending
// incomplete UTF-8 sequence counts as one invalid character, and the final
// unterminated line competes for MaxLineLength. Flushing resets the carry,
// so a second Flush contributes zero to every counter.
func Flush(locale Locale, c *Carry) Counts {
	var res Counts
	tl := c.tailLen
	c.tailLen = 0
	for k := 0; k < tl; k++ {
		invalidByte(c, &res)
	}
	if c.lineWidth > res.MaxLineLength {
		res.MaxLineLength = c.lineWidth
	}
	c.lineWidth = 0
	c.inWord = false
	return res
}
