// Package logging configures the process-wide logrus logger: leveled
// console output plus an optional log file that mirrors every logged
// entry without color codes.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/Jvryan92/StategyDECK/internal/paths"
)

// fileHook mirrors logged entries into a plain-text log file.
type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(line)
	return err
}

// Setup configures the global logrus logger. level defaults to info when
// empty; logFile, when non-empty, receives every logged entry without
// colors. A file logging failure downgrades to a warning, the console
// logger still works. Colors are decided explicitly because a file hook
// defeats logrus's own tty sniffing.
func Setup(level, logFile string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     term.IsTerminal(int(os.Stdout.Fd())),
		DisableColors:   !term.IsTerminal(int(os.Stdout.Fd())),
	})

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), paths.DirPerm); err != nil {
			logrus.Warnf("Could not set up file logging: %v", err)
			return nil
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, paths.FilePerm)
		if err != nil {
			logrus.Warnf("Could not set up file logging: %v", err)
			return nil
		}
		logrus.AddHook(&fileHook{
			file: f,
			formatter: &logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
				DisableColors:   true,
			},
		})
	}

	return nil
}
