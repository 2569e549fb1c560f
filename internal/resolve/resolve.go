// Package resolve maps a requested quality tier and output format onto a
// concrete yt-dlp format selector. It is pure: no I/O, no state, safe to
// call repeatedly with the same inputs.
package resolve

import (
	"fmt"

	"vidl/internal/media"
)

// Selectors that need no resolution comparison.
const (
	selectorBestAudio = "bestaudio/best"
	selectorBestVideo = "bestvideo+bestaudio/best"
)

// Resolve computes the selector and post-process target for a download.
//
// The result is always usable: error conditions that have a fallback
// (unsupported format, invalid tier) are signaled through the returned error
// while the result still carries a best-effort selection. Callers decide
// whether to treat them as warnings or abort.
func Resolve(mode media.Mode, tier media.Tier, format string, available []media.AvailableFormat) (media.ResolutionResult, error) {
	if mode == media.AudioOnly {
		return resolveAudio(format)
	}
	return resolveVideo(tier, format, available)
}

// resolveAudio always asks for the best audio stream; quality tiers do not
// apply to audio extraction. The conversion target defaults to mp3.
func resolveAudio(format string) (media.ResolutionResult, error) {
	res := media.ResolutionResult{
		Selector: selectorBestAudio,
		Convert:  media.DefaultAudioCodec,
	}
	if format == "" {
		return res, nil
	}
	if !media.IsAudioFormat(format) {
		return res, fmt.Errorf("audio format %q: %w", format, media.ErrUnsupportedFormat)
	}
	res.Convert = format
	return res, nil
}

func resolveVideo(tier media.Tier, format string, available []media.AvailableFormat) (media.ResolutionResult, error) {
	var err error

	convert := ""
	if format != "" {
		if media.IsVideoFormat(format) {
			convert = format
		} else {
			err = fmt.Errorf("video format %q: %w", format, media.ErrUnsupportedFormat)
		}
	}

	if !tier.Valid() {
		// Degrade to best rather than refuse the download.
		err = fmt.Errorf("quality %q: %w", tier, media.ErrInvalidQualityTier)
		tier = media.Best
	}

	if tier.IsBest() {
		return media.ResolutionResult{Selector: selectorBestVideo, Convert: convert}, err
	}

	h := closestHeight(int(tier), available)
	if h == 0 {
		// No usable format list; hand the ceiling to yt-dlp and let its own
		// closest-match semantics apply, with a plain "best" as last resort.
		return media.ResolutionResult{
			Selector: tierSelector(int(tier)),
			Convert:  convert,
		}, err
	}
	return media.ResolutionResult{
		Selector: tierSelector(h),
		Convert:  convert,
		Height:   h,
	}, err
}

func tierSelector(height int) string {
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]/best", height, height)
}

// closestHeight picks the highest available height not above ceiling. When
// every available stream exceeds the ceiling it falls back upward to the
// lowest height above it, so a download is never refused solely because the
// exact or lower tier is missing. Returns 0 when the set carries no video
// heights at all.
func closestHeight(ceiling int, available []media.AvailableFormat) int {
	below, above := 0, 0
	for _, f := range available {
		if !f.HasVideo || f.Height <= 0 {
			continue
		}
		switch {
		case f.Height <= ceiling:
			if f.Height > below {
				below = f.Height
			}
		case above == 0 || f.Height < above:
			above = f.Height
		}
	}
	if below > 0 {
		return below
	}
	return above
}
