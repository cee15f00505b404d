package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScript(); err != nil {
		return err
	}
	if err := c.validateTransliterate(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScript() error {
	if c.Script.GainDB > 0 {
		return errors.New("script.gain_db must be zero or negative (headroom below full scale)")
	}
	if c.Script.GainDB < -60 {
		return fmt.Errorf("script.gain_db %.1f is below the -60 dB floor", c.Script.GainDB)
	}
	return nil
}

func (c *Config) validateTransliterate() error {
	for from, to := range c.Transliterate.Substitutions {
		if from == "" {
			return errors.New("transliterate.substitutions contains an empty key")
		}
		if !utf8.ValidString(from) || !utf8.ValidString(to) {
			return fmt.Errorf("transliterate.substitutions entry %q is not valid UTF-8", from)
		}
		for _, r := range to {
			if r > 127 {
				return fmt.Errorf("transliterate.substitutions[%q] maps to non-ASCII %q", from, to)
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
