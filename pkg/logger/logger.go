package logger

import "github.com/op/go-logging"

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type opLogger struct {
	log *logging.Logger
}

func New() Logger { return &opLogger{log: logging.MustGetLogger("huffcodec")} }

func (l *opLogger) Infof(format string, v ...any)  { l.log.Infof(format, v...) }
func (l *opLogger) Errorf(format string, v ...any) { l.log.Errorf(format, v...) }
