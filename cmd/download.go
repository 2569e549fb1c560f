package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vidl/internal/fetch"
	"vidl/internal/media"
	"vidl/internal/platform"
	"vidl/internal/resolve"
	"vidl/internal/sanitize"
	"vidl/internal/ui"
)

// downloadRun is the default command: validate inputs, resolve the format
// selector, hand the download to yt-dlp, and stream progress.
func downloadRun(cmd *cobra.Command, args []string) error {
	plat, err := platform.Parse(flagPlatform)
	if err != nil {
		return err
	}

	matched, err := plat.ValidateURL(flagLink)
	if err != nil {
		return err
	}
	if !matched {
		ui.Warnf("URL %q may not match platform %q", flagLink, plat)
	}

	cookies, err := cfg.ExpandCookies()
	if err != nil {
		return err
	}
	if cookies != "" {
		if _, err := os.Stat(cookies); err != nil {
			return fmt.Errorf("%s: %w", cookies, media.ErrCookiesFileNotFound)
		}
	}

	tier, err := media.ParseTier(cfg.Quality)
	if err != nil {
		return err
	}

	mode := media.Video
	if flagAudioOnly {
		mode = media.AudioOnly
	}

	dir, err := cfg.ExpandDownloadDir()
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	client := fetch.New(cookies)
	if !client.Available() {
		return fmt.Errorf("yt-dlp not found in PATH (install it from https://github.com/yt-dlp/yt-dlp)")
	}

	ctx := cmd.Context()

	// The format list feeds the closest-match rule; numeric tiers are the
	// only consumers. A listing failure that isn't fatal degrades to the
	// tier-bounded selector.
	var available []media.AvailableFormat
	if mode == media.Video && !tier.IsBest() {
		available, err = client.ListFormats(ctx, flagLink)
		if err != nil {
			if errors.Is(err, media.ErrAuthRequired) || errors.Is(err, media.ErrSourceUnavailable) {
				return err
			}
			debugf("listing formats: %v", err)
		}
	}

	res, err := resolve.Resolve(mode, tier, cfg.Format, available)
	if err != nil {
		if !errors.Is(err, media.ErrUnsupportedFormat) {
			return err
		}
		ui.Warnf("%v; continuing with quality-only selection", err)
	}

	if res.Convert != "" && !client.FFmpegAvailable() {
		ui.Warnf("%v: ffmpeg not in PATH, keeping the original container", media.ErrConversionUnavailable)
	}

	ui.Infof("platform: %s", plat)
	ui.Infof("quality: %s", tier)
	if res.Height != 0 && res.Height != int(tier) {
		ui.Infof("closest available: %dp", res.Height)
	}
	if res.Convert != "" {
		ui.Infof("convert to: %s", res.Convert)
	}
	ui.Infof("mode: %s", mode)
	ui.Infof("output: %s", dir)
	debugf("selector: %s", res.Selector)

	tmpl, err := sanitize.OutputTemplate(dir, flagFilename)
	if err != nil {
		return fmt.Errorf("building output path: %w", err)
	}

	prog := ui.NewProgress()
	final, err := client.Fetch(ctx, flagLink, res, fetch.Options{
		OutputTemplate: tmpl,
		AudioOnly:      mode == media.AudioOnly,
		Progress: func(ev fetch.ProgressEvent) {
			prog.Update(ev.Percent, ev.ETASeconds)
		},
	})
	prog.Finish()
	if err != nil {
		return err
	}

	ui.Successf("downloaded to %s", final)
	return nil
}
