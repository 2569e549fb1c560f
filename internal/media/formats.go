package media

// Output containers and codecs vidl will ask ffmpeg (via yt-dlp) to produce.
// Anything else is an unsupported format request.
var (
	videoFormats = map[string]bool{
		"mp4": true, "webm": true, "mkv": true, "avi": true, "mov": true, "flv": true,
	}
	audioFormats = map[string]bool{
		"mp3": true, "m4a": true, "opus": true, "ogg": true, "wav": true, "aac": true,
	}
)

// DefaultAudioCodec is the conversion target for audio-only downloads when
// no format was requested.
const DefaultAudioCodec = "mp3"

// IsVideoFormat reports whether name is an accepted video container.
func IsVideoFormat(name string) bool { return videoFormats[name] }

// IsAudioFormat reports whether name is an accepted audio codec.
func IsAudioFormat(name string) bool { return audioFormats[name] }
