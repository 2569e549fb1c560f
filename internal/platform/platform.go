// Package platform defines the closed set of sources vidl downloads from
// and their URL validation. The table is immutable; nothing mutates it
// after init.
package platform

import (
	"fmt"
	"net/url"
	"strings"

	"vidl/internal/media"
)

// Platform is one of the supported download sources.
type Platform int

const (
	YouTube Platform = iota
	Instagram
	TwitterX
)

// hosts maps each platform to the host suffixes it accepts.
var hosts = map[Platform][]string{
	YouTube:   {"youtube.com", "youtu.be"},
	Instagram: {"instagram.com"},
	TwitterX:  {"twitter.com", "x.com"},
}

// Parse converts a CLI platform name into a Platform.
// "x" is an alias for twitter.
func Parse(name string) (Platform, error) {
	switch strings.ToLower(name) {
	case "youtube":
		return YouTube, nil
	case "instagram":
		return Instagram, nil
	case "twitter", "x":
		return TwitterX, nil
	default:
		return 0, fmt.Errorf("%q (supported: youtube, instagram, twitter, x): %w",
			name, media.ErrInvalidPlatform)
	}
}

func (p Platform) String() string {
	switch p {
	case YouTube:
		return "youtube"
	case Instagram:
		return "instagram"
	case TwitterX:
		return "twitter"
	default:
		return "unknown"
	}
}

// ValidateURL checks that raw is a well-formed http(s) URL and reports
// whether its host belongs to p. A malformed URL is an error; a host that
// merely does not match the platform is not — callers warn and proceed.
func (p Platform) ValidateURL(raw string) (bool, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return false, fmt.Errorf("%q: %w", raw, media.ErrInvalidURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false, fmt.Errorf("%q: scheme must be http or https: %w", raw, media.ErrInvalidURL)
	}
	if u.Hostname() == "" {
		return false, fmt.Errorf("%q: missing host: %w", raw, media.ErrInvalidURL)
	}

	host := strings.ToLower(u.Hostname())
	for _, h := range hosts[p] {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true, nil
		}
	}
	return false, nil
}
