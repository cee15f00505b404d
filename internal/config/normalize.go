package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	c.normalizeLogging()
	return c.normalizeScript()
}

func (c *Config) normalizeTools() {
	set := func(field *string, fallback string) {
		*field = strings.TrimSpace(*field)
		if *field == "" {
			*field = fallback
		}
	}
	set(&c.Tools.Sox, defaultSox)
	set(&c.Tools.Soxi, defaultSoxi)
	set(&c.Tools.FFmpeg, defaultFFmpeg)
	set(&c.Tools.FFprobe, defaultFFprobe)
	set(&c.Tools.Lame, defaultLame)
	set(&c.Tools.Iconv, defaultIconv)
}

func (c *Config) normalizeScript() error {
	c.Script.TempDir = strings.TrimSpace(c.Script.TempDir)
	if c.Script.TempDir != "" {
		expanded, err := expandPath(c.Script.TempDir)
		if err != nil {
			return fmt.Errorf("script.temp_dir: %w", err)
		}
		c.Script.TempDir = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
