// Package audit provides the rotating on-disk log of raw upstream
// payloads. It exists for operator debugging only; nothing in the
// service reads it back.
package audit

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 50
	maxBackups = 3
	maxAgeDays = 14
)

// NewWriter returns a size-capped, age-capped rotating writer for the
// given path, or nil when no path is configured.
func NewWriter(path string) io.WriteCloser {
	if path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}
