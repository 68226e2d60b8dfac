package log

import (
	"io"
	"sync/atomic"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

var disabled atomic.Bool

func init() {
	// Filtering happens per module, let everything reach logrus.
	logrus.SetLevel(DebugLevel)
}

// Disable turns off all logging, warnings and errors included.
func Disable() { disabled.Store(true) }

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) { logrus.SetOutput(w) }
