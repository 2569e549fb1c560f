// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"vidl/internal/config"
	"vidl/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Flags
var (
	flagPlatform  string
	flagLink      string
	flagQuality   string
	flagOutput    string
	flagAudioOnly bool
	flagFilename  string
	flagCookies   string
	flagFormat    string
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vidl",
	Short: "Download videos from YouTube, Instagram, and Twitter/X",
	Long: `vidl downloads a single video (or its audio track) from YouTube,
Instagram, or Twitter/X by delegating to yt-dlp.

Examples:
  vidl --platform youtube --link "https://youtube.com/watch?v=..." --quality 720
  vidl --platform instagram --link "https://instagram.com/p/..." --output ./downloads
  vidl --platform twitter --link "https://twitter.com/.../status/..." --audio-only
  vidl --platform x --link "https://x.com/.../status/..." --quality best --filename my_video
  vidl --platform youtube --link "https://youtube.com/watch?v=..." --format webm
  vidl --platform youtube --link "https://youtube.com/watch?v=..." --audio-only --format m4a`,
	PersistentPreRunE: loadConfig,
	RunE:              downloadRun,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagPlatform, "platform", "", "Platform name: youtube | instagram | twitter | x")
	rootCmd.Flags().StringVar(&flagLink, "link", "", "Video URL to download")
	rootCmd.Flags().StringVar(&flagQuality, "quality", "", "Video quality: 360 | 480 | 720 | 1080 | best (default best)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "Output directory (default: current directory)")
	rootCmd.Flags().BoolVar(&flagAudioOnly, "audio-only", false, "Download audio only (MP3 by default)")
	rootCmd.Flags().StringVar(&flagFilename, "filename", "", "Custom output filename (extension is added automatically)")
	rootCmd.Flags().StringVar(&flagCookies, "cookies", "", "Path to cookies file for authentication")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (video: mp4, webm, mkv, avi, mov, flv; audio: mp3, m4a, opus, ogg, wav, aac)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.MarkFlagRequired("platform")
	rootCmd.MarkFlagRequired("link")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	// CLI flags override config file values
	if flagQuality != "" {
		cfg.Quality = flagQuality
	}
	if flagOutput != "" {
		cfg.DownloadDir = flagOutput
	}
	if flagCookies != "" {
		cfg.Cookies = flagCookies
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagDebug {
		cfg.Debug = true
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[vidl] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}
