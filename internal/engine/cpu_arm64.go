//go:build arm64

package engine

import "golang.org/x/sys/cpu"

// probeTier maps the CPU's vector width onto a lane tier. NEON is
// architectural baseline on arm64, so 16-byte lanes need no probe.
func probeTier() Tier {
	if cpu.ARM64.HasSVE {
		return TierWide32
	}
	return TierWide16
}
