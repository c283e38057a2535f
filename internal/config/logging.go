package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const defaultLogPath = "pynesweeper.log"

func LogPath() string {
	if path, ok := os.LookupEnv("PYNESWEEPER_LOG"); ok {
		return path
	}
	return defaultLogPath
}

// NewLogger builds the game logger. The terminal belongs to the board,
// so console output is discarded and a rotating log file carries
// everything instead.
func NewLogger(path string) (*logrus.Logger, error) {
	logLevel := logrus.InfoLevel
	if Development() {
		logLevel = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(logLevel)
	log.SetOutput(io.Discard)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // Mb
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, err
	}
	log.AddHook(hook)

	return log, nil
}
