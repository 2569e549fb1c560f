// Package media defines the shared types for the vidl application.
package media

import (
	"strconv"
)

// Mode selects between a full video download and audio extraction.
type Mode int

const (
	Video Mode = iota
	AudioOnly
)

func (m Mode) String() string {
	switch m {
	case Video:
		return "video"
	case AudioOnly:
		return "audio-only"
	default:
		return "unknown"
	}
}

// Tier is a requested maximum vertical resolution. The zero value is Best,
// which satisfies any resolution ceiling.
type Tier int

// Best requests the highest available quality with no numeric ceiling.
const Best Tier = 0

// numericTiers are the supported resolution ceilings, ascending.
var numericTiers = []Tier{360, 480, 720, 1080}

// ParseTier converts a CLI/config quality string into a Tier.
// "best" and "" both mean Best.
func ParseTier(s string) (Tier, error) {
	if s == "" || s == "best" {
		return Best, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Best, wrapf(ErrInvalidQualityTier, "quality %q", s)
	}
	for _, t := range numericTiers {
		if Tier(n) == t {
			return t, nil
		}
	}
	// Tier(0) must not alias the Best sentinel.
	return Best, wrapf(ErrInvalidQualityTier, "quality %q", s)
}

// Valid reports whether t is Best or one of the supported numeric tiers.
func (t Tier) Valid() bool {
	if t == Best {
		return true
	}
	for _, n := range numericTiers {
		if t == n {
			return true
		}
	}
	return false
}

// IsBest reports whether t carries no numeric ceiling.
func (t Tier) IsBest() bool { return t == Best }

func (t Tier) String() string {
	if t == Best {
		return "best"
	}
	return strconv.Itoa(int(t))
}

// AvailableFormat is one stream variant reported by yt-dlp for a URL.
type AvailableFormat struct {
	ID       string // opaque format_id, usable in a selector
	Ext      string // container extension
	Height   int    // vertical resolution; 0 for audio-only streams
	HasVideo bool
	HasAudio bool
}

// ResolutionResult is the outcome of the resolution policy: the format
// selector to hand to yt-dlp plus an optional post-process conversion target.
type ResolutionResult struct {
	Selector string
	Convert  string // target container/codec after download; "" keeps the native one
	Height   int    // resolved height when a format list was consulted; 0 otherwise
}
