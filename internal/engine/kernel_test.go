package engine

import (
	"bytes"
	"strings"
	"testing"
)

// Lane-aligned inputs exercise the SWAR fast path without scalar tail help;
// the long-line and mixed cases also leave a short scalar tail.
func TestKernelLaneAligned(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		locale Locale
	}{
		{"one full lane of text", "lorem ipsum dolo", LocaleUTF8},
		{"newline at lane start", "\nlorem ipsum dol", LocaleUTF8},
		{"newline at lane end", "lorem ipsum dol\n", LocaleUTF8},
		{"all newlines", strings.Repeat("\n", 64), LocaleUTF8},
		{"all spaces", strings.Repeat(" ", 64), LocaleUTF8},
		{"word spans lanes", strings.Repeat("x", 128), LocaleUTF8},
		{"alternating", strings.Repeat("a ", 64), LocaleUTF8},
		{"tabs and words", strings.Repeat("ab\tcd\n\t\t", 16), LocaleUTF8},
		{"long line across lanes", strings.Repeat("y", 100) + "\n" + strings.Repeat("z", 28), LocaleUTF8},
		{"high bytes single-byte", strings.Repeat("\xd7\xa9 ", 32), LocaleSingleByte},
		{"utf8 forces cold path", strings.Repeat("\xd7\xa9 ", 32), LocaleUTF8},
		{"mixed hot and cold lanes", strings.Repeat("ascii only here ", 4) + "\xe2\x82\xac " + strings.Repeat("more ascii text ", 4), LocaleUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.input)
			want := oracle(data, tt.locale)
			for _, tier := range Tiers() {
				if got := countTier(t, data, tt.locale, tier); got != want {
					t.Errorf("tier %s: got %+v, want %+v", tier, got, want)
				}
			}
		})
	}
}

// The word-start bitmask must see the carry as the predecessor of lane bit 0.
func TestKernelWordCarryAcrossLanes(t *testing.T) {
	// 16 bytes ending mid-word, then a lane starting mid-word: one word.
	data := []byte("aaaaaaaaaaaaaaaa" + "bbbbbbbbbbbbbbbb")
	for _, tier := range []Tier{TierWide16, TierWide32} {
		var c Carry
		var res Counts
		res = countStreamingTier(data, LocaleSingleByte, &c, tier)
		res = Merge(res, Flush(LocaleSingleByte, &c))
		if res.Words != 1 {
			t.Errorf("tier %s: words = %d, want 1", tier, res.Words)
		}
	}

	// Lane ends in whitespace, next starts a word: two words.
	data = []byte("aaaaaaaaaaaaaaa " + "bbbbbbbbbbbbbbbb")
	for _, tier := range []Tier{TierWide16, TierWide32} {
		if got := countTier(t, data, LocaleSingleByte, tier); got.Words != 2 {
			t.Errorf("tier %s: words = %d, want 2", tier, got.Words)
		}
	}
}

// Line width must bridge lanes: a line torn across three 16-byte lanes has
// one width, not three.
func TestKernelLineWidthBridgesLanes(t *testing.T) {
	line := strings.Repeat("q", 45)
	data := []byte(line + "\n" + "tail")
	for _, tier := range Tiers() {
		got := countTier(t, data, LocaleSingleByte, tier)
		if got.MaxLineLength != 45 {
			t.Errorf("tier %s: MaxLineLength = %d, want 45", tier, got.MaxLineLength)
		}
	}
}

func TestLaneMask(t *testing.T) {
	if laneMask(16) != 0xFFFF {
		t.Errorf("laneMask(16) = %#x", laneMask(16))
	}
	if laneMask(32) != 0xFFFFFFFF {
		t.Errorf("laneMask(32) = %#x", laneMask(32))
	}
	if laneMask(64) != ^uint64(0) {
		t.Errorf("laneMask(64) = %#x", laneMask(64))
	}
}

// Each 16-byte movemask variant must drive the kernel to identical counts.
func TestKernelMovemaskVariants(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox\njumps over the lazy dog\n"), 8)
	want := oracle(data, LocaleSingleByte)
	for name, pack := range map[string]moveMask{
		"mul":    packMul,
		"scalar": packScalar,
		"table":  packTable,
	} {
		k := &vectorKernel{width: 16, pack: pack}
		var c Carry
		var res Counts
		res.Bytes = len(data)
		i := 0
		for ; i+k.width <= len(data); i += k.width {
			k.chunk(data[i:i+k.width], LocaleSingleByte, &c, &res)
		}
		if i < len(data) {
			scalarSegment(data[i:], LocaleSingleByte, &c, &res)
		}
		res = Merge(res, Flush(LocaleSingleByte, &c))
		if res != want {
			t.Errorf("variant %s: got %+v, want %+v", name, res, want)
		}
	}
}

func TestDispatcher(t *testing.T) {
	tier := ActiveTier()
	if tier != ActiveTier() {
		t.Error("ActiveTier must be stable")
	}
	found := false
	for _, u := range Tiers() {
		if u == tier {
			found = true
		}
	}
	if !found {
		t.Errorf("ActiveTier %v not in Tiers()", tier)
	}
	for _, u := range Tiers() {
		if u.String() == "unknown" {
			t.Errorf("tier %d has no name", u)
		}
	}
}
