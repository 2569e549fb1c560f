// Package fetch wraps the yt-dlp binary (through go-ytdlp) behind the two
// operations vidl needs: listing the available formats of a URL and running
// one synchronous download with progress reporting. All network and
// container work happens inside yt-dlp and ffmpeg.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"vidl/internal/media"
)

// ProgressEvent is one step of a running download.
type ProgressEvent struct {
	Percent    float64
	ETASeconds int // -1 when unknown
}

// Options configures a single download.
type Options struct {
	OutputTemplate string
	AudioOnly      bool
	Progress       func(ProgressEvent)
}

// Client invokes yt-dlp for a single run. Construct with New.
type Client struct {
	cookies    string
	haveFFmpeg bool
}

// New creates a client. cookies may be empty. ffmpeg availability is probed
// once here; conversions degrade to no-ops without it.
func New(cookies string) *Client {
	_, err := exec.LookPath("ffmpeg")
	return &Client{cookies: cookies, haveFFmpeg: err == nil}
}

// Available reports whether the yt-dlp binary can be found in PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath("yt-dlp")
	return err == nil
}

// FFmpegAvailable reports whether post-process conversion is possible.
func (c *Client) FFmpegAvailable() bool { return c.haveFFmpeg }

// formatDump mirrors the slice of `yt-dlp -J` output we consume.
type formatDump struct {
	Title   string `json:"title"`
	Formats []struct {
		FormatID string `json:"format_id"`
		Ext      string `json:"ext"`
		Height   int    `json:"height"`
		VCodec   string `json:"vcodec"`
		ACodec   string `json:"acodec"`
	} `json:"formats"`
}

// ListFormats asks yt-dlp which streams exist for url.
func (c *Client) ListFormats(ctx context.Context, url string) ([]media.AvailableFormat, error) {
	dl := ytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		NoPlaylist().
		Quiet()
	if c.cookies != "" {
		dl = dl.Cookies(c.cookies)
	}

	r, err := dl.Run(ctx, url)
	if err != nil {
		return nil, classify(err, runStderr(r))
	}

	return parseFormats([]byte(r.Stdout))
}

func parseFormats(data []byte) ([]media.AvailableFormat, error) {
	var dump formatDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parsing format dump: %w", err)
	}

	out := make([]media.AvailableFormat, 0, len(dump.Formats))
	for _, f := range dump.Formats {
		out = append(out, media.AvailableFormat{
			ID:       f.FormatID,
			Ext:      f.Ext,
			Height:   f.Height,
			HasVideo: f.VCodec != "" && f.VCodec != "none",
			HasAudio: f.ACodec != "" && f.ACodec != "none",
		})
	}
	return out, nil
}

// Fetch downloads url per the resolved selection and returns the final path.
// On failure any partial file is removed.
func (c *Client) Fetch(ctx context.Context, url string, res media.ResolutionResult, opts Options) (string, error) {
	dl := ytdlp.New().
		Format(res.Selector).
		Output(opts.OutputTemplate).
		NoPlaylist().
		NoWarnings().
		Print("after_move:filepath")

	if c.cookies != "" {
		dl = dl.Cookies(c.cookies)
	}

	// Conversion needs ffmpeg; without it the native container is kept.
	switch {
	case opts.AudioOnly && c.haveFFmpeg:
		dl = dl.ExtractAudio().AudioFormat(res.Convert).AudioQuality("192K")
	case !opts.AudioOnly && res.Convert != "" && c.haveFFmpeg:
		dl = dl.MergeOutputFormat(res.Convert)
	}

	var partial string
	start := time.Now()
	dl = dl.ProgressFunc(250*time.Millisecond, func(u ytdlp.ProgressUpdate) {
		if u.Filename != "" {
			partial = u.Filename
		}
		if opts.Progress == nil {
			return
		}
		switch u.Status {
		case ytdlp.ProgressStatusDownloading, ytdlp.ProgressStatusFinished:
			pct := u.Percent()
			opts.Progress(ProgressEvent{Percent: pct, ETASeconds: eta(start, pct)})
		}
	})

	r, err := dl.Run(ctx, url)
	if err != nil {
		removePartial(partial)
		return "", classify(err, runStderr(r))
	}

	final := finalPath(r.Stdout)
	if final == "" {
		final = partial
	}
	if final == "" {
		return "", fmt.Errorf("yt-dlp reported no output file")
	}
	return final, nil
}

// finalPath extracts the path printed by --print after_move:filepath.
// The last non-empty stdout line wins (post-processing may rename).
func finalPath(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// eta estimates remaining seconds from elapsed time and completion so far.
func eta(start time.Time, percent float64) int {
	if percent <= 0 || percent >= 100 {
		return -1
	}
	elapsed := time.Since(start).Seconds()
	if elapsed < 1 {
		return -1
	}
	return int(elapsed * (100 - percent) / percent)
}

func removePartial(path string) {
	if path == "" {
		return
	}
	os.Remove(path + ".part")
	os.Remove(path)
}

func runStderr(r *ytdlp.Result) string {
	if r == nil {
		return ""
	}
	return r.Stderr
}

// classify maps a yt-dlp failure onto the error taxonomy by inspecting its
// stderr. Message fragments follow yt-dlp's extractor wording.
func classify(err error, stderr string) error {
	s := strings.ToLower(stderr)

	switch {
	case containsAny(s,
		"sign in to confirm",
		"login required",
		"requested content is not available",
		"use --cookies",
		"authentication",
		"private video",
		"rate-limit reached"):
		return fmt.Errorf("%w: %v", media.ErrAuthRequired, err)
	case containsAny(s,
		"video unavailable",
		"http error 404",
		"unable to download",
		"is not a valid url",
		"unsupported url",
		"no video could be found"):
		return fmt.Errorf("%w: %v", media.ErrSourceUnavailable, err)
	default:
		return fmt.Errorf("yt-dlp: %w", err)
	}
}

func containsAny(s string, fragments ...string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
