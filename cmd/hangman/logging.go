package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log destination. The active file is renamed with a timestamp once it
// outgrows maxLogSize, so a long-lived install never fills the disk with
// one giant file.
const (
	logDir      = "logs"
	logFileName = "hangman.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the global logger to a file in debug mode and
// disables it otherwise. Log output never goes to the terminal; the
// screen session owns it. The caller keeps the returned file open for
// the life of the process; it is nil when logging is off or the file
// could not be opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("hangman-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.Nop()
		return nil
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	return file
}
