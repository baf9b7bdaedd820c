package keg

import "fmt"

// DedupPolicy decides when a repeated KO code on a D record is dropped.
type DedupPolicy int

const (
	// DedupGlobal drops a KO already recorded anywhere in the hierarchy.
	DedupGlobal DedupPolicy = iota
	// DedupScoped drops a KO already recorded under the current
	// Group/Classification pair; the first occurrence wins.
	DedupScoped
	// DedupNone keeps every D record; a repeat under the same pair
	// overwrites the earlier description in place.
	DedupNone
)

func (p DedupPolicy) String() string {
	switch p {
	case DedupGlobal:
		return "global"
	case DedupScoped:
		return "scoped"
	case DedupNone:
		return "none"
	default:
		return fmt.Sprintf("DedupPolicy(%d)", int(p))
	}
}

// ParseDedupPolicy converts "global", "scoped" or "none" to a DedupPolicy.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch s {
	case "global":
		return DedupGlobal, nil
	case "scoped":
		return DedupScoped, nil
	case "none":
		return DedupNone, nil
	default:
		return 0, fmt.Errorf("unknown dedup policy %q: must be 'global', 'scoped', or 'none'", s)
	}
}
