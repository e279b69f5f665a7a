package logs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "croupier",
	Level:  log.WarnLevel,
})

// SetLevel sets the minimum level by name (debug, info, warn, error)
func SetLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(l)
	return nil
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debug(format string, values ...any) {
	logger.Debugf(format, values...)
}

func Info(format string, values ...any) {
	logger.Infof(format, values...)
}

func Warn(format string, values ...any) {
	logger.Warnf(format, values...)
}

func Error(format string, values ...any) {
	logger.Errorf(format, values...)
}
