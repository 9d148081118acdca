//go:build amd64

package engine

import "golang.org/x/sys/cpu"

// probeTier maps the CPU's vector width onto a lane tier. SSE2 is
// architectural baseline on amd64, so 16-byte lanes need no probe.
func probeTier() Tier {
	switch {
	case cpu.X86.HasAVX512BW:
		return TierWide64
	case cpu.X86.HasAVX2:
		return TierWide32
	}
	return TierWide16
}
