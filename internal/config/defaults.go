package config

const (
	defaultSox     = "sox"
	defaultSoxi    = "soxi"
	defaultFFmpeg  = "ffmpeg"
	defaultFFprobe = "ffprobe"
	defaultLame    = "lame"
	defaultIconv   = "iconv"

	defaultGainDB = -1.0

	defaultGenre   = "Unknown"
	defaultArtist  = "Unknown Artist"
	defaultAlbum   = "Unknown Album"
	defaultYear    = ""
	defaultComment = ""
	defaultImage   = ""

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			Sox:     defaultSox,
			Soxi:    defaultSoxi,
			FFmpeg:  defaultFFmpeg,
			FFprobe: defaultFFprobe,
			Lame:    defaultLame,
			Iconv:   defaultIconv,
		},
		Script: Script{
			GainDB: defaultGainDB,
		},
		Tags: Tags{
			Genre:   defaultGenre,
			Artist:  defaultArtist,
			Album:   defaultAlbum,
			Year:    defaultYear,
			Comment: defaultComment,
			Image:   defaultImage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
