package engine

import "sync"

// Tier is a choice of lane width, selected once per process by probing CPU
// capability. Every tier is pure Go and runnable on any host; the probe only
// picks the default, preferring wider lanes on CPUs whose vector units favor
// them.
type Tier int

const (
	TierScalar Tier = iota
	TierWide16
	TierWide32
	TierWide64
)

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierWide16:
		return "16-byte"
	case TierWide32:
		return "32-byte"
	case TierWide64:
		return "64-byte"
	}
	return "unknown"
}

var (
	tierOnce   sync.Once
	activeTier Tier
)

// ActiveTier returns the tier selected for this process. The probe runs once
// and the result is immutable for the process lifetime.
func ActiveTier() Tier {
	tierOnce.Do(func() { activeTier = probeTier() })
	return activeTier
}

// Tiers lists every tier, widest last. All are runnable on every host, which
// is what makes tier-equivalence directly testable.
func Tiers() []Tier {
	return []Tier{TierScalar, TierWide16, TierWide32, TierWide64}
}

func kernelFor(t Tier) *vectorKernel {
	switch t {
	case TierWide16:
		return kernel16
	case TierWide32:
		return kernel32
	case TierWide64:
		return kernel64
	}
	return nil
}
