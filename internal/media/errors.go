package media

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions vidl distinguishes. Callers match them
// with errors.Is; several of these degrade to warnings when a fallback
// exists (unsupported format, unavailable conversion tool).
var (
	ErrInvalidPlatform       = errors.New("invalid platform")
	ErrInvalidURL            = errors.New("invalid URL")
	ErrInvalidQualityTier    = errors.New("invalid quality tier")
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrCookiesFileNotFound   = errors.New("cookies file not found")
	ErrAuthRequired          = errors.New("authentication required")
	ErrSourceUnavailable     = errors.New("source unavailable")
	ErrConversionUnavailable = errors.New("conversion unavailable")
)

// wrapf prefixes sentinel err with formatted context.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
