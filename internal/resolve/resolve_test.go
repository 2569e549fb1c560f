package resolve

import (
	"errors"
	"strings"
	"testing"

	"vidl/internal/media"
)

// video builds a video-only AvailableFormat at the given height.
func video(height int) media.AvailableFormat {
	return media.AvailableFormat{ID: "v", Ext: "mp4", Height: height, HasVideo: true}
}

func audio() media.AvailableFormat {
	return media.AvailableFormat{ID: "a", Ext: "m4a", HasAudio: true}
}

func formats(heights ...int) []media.AvailableFormat {
	fs := []media.AvailableFormat{audio()}
	for _, h := range heights {
		fs = append(fs, video(h))
	}
	return fs
}

func TestResolveAudioDefaultsToMP3(t *testing.T) {
	res, err := Resolve(media.AudioOnly, media.Best, "", nil)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Selector != "bestaudio/best" {
		t.Errorf("selector = %q, want bestaudio/best", res.Selector)
	}
	if res.Convert != "mp3" {
		t.Errorf("convert = %q, want mp3", res.Convert)
	}
}

func TestResolveAudioRequestedCodec(t *testing.T) {
	res, err := Resolve(media.AudioOnly, media.Best, "opus", nil)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Convert != "opus" {
		t.Errorf("convert = %q, want opus", res.Convert)
	}
}

func TestResolveAudioIgnoresTier(t *testing.T) {
	// Quality tiers do not apply to audio extraction.
	for _, tier := range []media.Tier{media.Best, 360, 1080} {
		res, err := Resolve(media.AudioOnly, tier, "", formats(480, 1080))
		if err != nil {
			t.Fatalf("Resolve(tier=%v) error: %v", tier, err)
		}
		if res.Selector != "bestaudio/best" {
			t.Errorf("tier %v: selector = %q, want bestaudio/best", tier, res.Selector)
		}
	}
}

func TestResolveAudioUnsupportedCodec(t *testing.T) {
	res, err := Resolve(media.AudioOnly, media.Best, "flac", nil)
	if !errors.Is(err, media.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	// Best-effort fallback still converts to the default codec.
	if res.Convert != "mp3" {
		t.Errorf("convert = %q, want mp3 fallback", res.Convert)
	}
	if res.Selector != "bestaudio/best" {
		t.Errorf("selector = %q, want bestaudio/best", res.Selector)
	}
}

func TestResolveVideoBest(t *testing.T) {
	res, err := Resolve(media.Video, media.Best, "", formats(360, 720, 1080))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Selector != "bestvideo+bestaudio/best" {
		t.Errorf("selector = %q, want bestvideo+bestaudio/best", res.Selector)
	}
	// BEST never compares resolutions.
	if strings.Contains(res.Selector, "height") {
		t.Errorf("selector %q should not contain a height comparison", res.Selector)
	}
	if res.Height != 0 {
		t.Errorf("height = %d, want 0", res.Height)
	}
}

func TestResolveVideoClosestMatch(t *testing.T) {
	tests := []struct {
		name    string
		tier    media.Tier
		heights []int
		want    int
	}{
		{"exact match", 720, []int{360, 480, 720, 1080}, 720},
		{"below preferred over above", 720, []int{480, 1080}, 480},
		{"all above falls back to minimum", 720, []int{1080, 1440}, 1080},
		{"single height below", 1080, []int{360}, 360},
		{"single height above", 360, []int{2160}, 2160},
		{"duplicates", 720, []int{480, 480, 1080, 1080}, 480},
		{"highest of the eligible", 1080, []int{144, 240, 360, 480, 720}, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(media.Video, tt.tier, "", formats(tt.heights...))
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if res.Height != tt.want {
				t.Errorf("height = %d, want %d", res.Height, tt.want)
			}
			want := tierSelector(tt.want)
			if res.Selector != want {
				t.Errorf("selector = %q, want %q", res.Selector, want)
			}
		})
	}
}

func TestResolveVideoNoFormatList(t *testing.T) {
	// With nothing reported, the ceiling goes to yt-dlp verbatim.
	res, err := Resolve(media.Video, 720, "", nil)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := "bestvideo[height<=720]+bestaudio/best[height<=720]/best"
	if res.Selector != want {
		t.Errorf("selector = %q, want %q", res.Selector, want)
	}
	if res.Height != 0 {
		t.Errorf("height = %d, want 0 (no list consulted)", res.Height)
	}
}

func TestResolveVideoAudioOnlyListIsNoList(t *testing.T) {
	// A format list with no video heights behaves like an empty one.
	res, err := Resolve(media.Video, 480, "", []media.AvailableFormat{audio(), audio()})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Height != 0 {
		t.Errorf("height = %d, want 0", res.Height)
	}
	if !strings.Contains(res.Selector, "height<=480") {
		t.Errorf("selector = %q, want tier-bounded", res.Selector)
	}
}

func TestResolveVideoContainer(t *testing.T) {
	res, err := Resolve(media.Video, 720, "webm", formats(720))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Convert != "webm" {
		t.Errorf("convert = %q, want webm", res.Convert)
	}
}

func TestResolveVideoUnsupportedContainer(t *testing.T) {
	res, err := Resolve(media.Video, 720, "xyz", formats(480, 1080))
	if !errors.Is(err, media.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	// Selector is still computed from quality alone.
	if res.Height != 480 {
		t.Errorf("height = %d, want 480", res.Height)
	}
	if res.Convert != "" {
		t.Errorf("convert = %q, want empty", res.Convert)
	}
}

func TestResolveVideoAudioCodecIsNotAContainer(t *testing.T) {
	_, err := Resolve(media.Video, media.Best, "mp3", nil)
	if !errors.Is(err, media.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat for mp3 in video mode", err)
	}
}

func TestResolveInvalidTierDegradesToBest(t *testing.T) {
	res, err := Resolve(media.Video, 1440, "", formats(1080))
	if !errors.Is(err, media.ErrInvalidQualityTier) {
		t.Fatalf("error = %v, want ErrInvalidQualityTier", err)
	}
	if res.Selector != "bestvideo+bestaudio/best" {
		t.Errorf("selector = %q, want best fallback", res.Selector)
	}
}

func TestResolveIdempotent(t *testing.T) {
	avail := formats(360, 480, 720, 1080)
	first, err1 := Resolve(media.Video, 720, "mkv", avail)
	second, err2 := Resolve(media.Video, 720, "mkv", avail)
	if err1 != nil || err2 != nil {
		t.Fatalf("Resolve() errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestClosestHeightProperty(t *testing.T) {
	// For every tier and height set: max({h <= T}) when nonempty, else min(H).
	tiers := []int{360, 480, 720, 1080}
	sets := [][]int{
		{144}, {2160}, {360, 1080}, {480, 720}, {144, 240, 1440, 2160},
		{360, 480, 720, 1080}, {608, 806}, {1080, 1440, 2160},
	}

	for _, tier := range tiers {
		for _, set := range sets {
			got := closestHeight(tier, formats(set...))

			wantBelow, wantMin := 0, 0
			for _, h := range set {
				if h <= tier && h > wantBelow {
					wantBelow = h
				}
				if wantMin == 0 || h < wantMin {
					wantMin = h
				}
			}
			want := wantBelow
			if want == 0 {
				want = wantMin
			}

			if got != want {
				t.Errorf("closestHeight(%d, %v) = %d, want %d", tier, set, got, want)
			}
		}
	}
}
