// Package logger builds the zerolog logger the transport client accepts for
// request logging.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

// Build accumulates logger options before Make.
type Build struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

// Log is the built logger plus the file handle backing it, if any.
type Log struct {
	Logger  zerolog.Logger
	LogFile *os.File
}

// Close releases the backing file when the logger was built from a path.
func (l *Log) Close() error {
	if l.LogFile == nil {
		return nil
	}
	return l.LogFile.Close()
}

// New starts a logger build. Without FromPath or FromBuffer the logger
// writes to stdout.
func New() *Build {
	return &Build{level: zerolog.InfoLevel}
}

// FromPath directs log output to the file at path, appending.
func (build *Build) FromPath(path string) *Build {
	build.path = path
	return build
}

// FromBuffer directs log output to w.
func (build *Build) FromBuffer(w io.Writer) *Build {
	build.writer = w
	return build
}

// Level sets the minimum level; the default is info.
func (build *Build) Level(level zerolog.Level) *Build {
	build.level = level
	return build
}

// Make builds the logger.
func (build *Build) Make() (logData *Log, err error) {
	logData = new(Log)
	writer := build.writer
	if writer == nil {
		writer = os.Stdout
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(logData.LogFile)
	}
	logData.Logger = zerolog.New(writer).Level(build.level).With().Timestamp().Logger()
	return
}
