// SPDX-License-Identifier: MIT

package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a charmbracelet logger for these settings. Unknown levels
// fall back to info.
func (c LogConfig) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}
	switch c.Format {
	case "json":
		opts.Formatter = log.JSONFormatter
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
	default:
		opts.Formatter = log.TextFormatter
	}
	return log.NewWithOptions(w, opts)
}
