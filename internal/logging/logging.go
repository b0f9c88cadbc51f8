package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"user_directory/internal/config"
)

// Setup configures the global logrus logger from cfg. The returned closer
// releases the rotated log file, if one was opened.
func Setup(cfg *config.Config) io.Closer {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true}) // Human-readable locally
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel // Default level
	}
	logrus.SetLevel(level)

	if cfg.LogPath == "" {
		logrus.SetOutput(os.Stdout) // Console only
		return io.NopCloser(nil)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 10,
		MaxAge:     7, // days
		LocalTime:  true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file)) // Console and rotated file
	return file
}
