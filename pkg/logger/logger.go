package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is the logging interface used across the module. Components receive
// a Logger at construction time and never log through a global.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Panic(v ...interface{})
	Panicf(format string, v ...interface{})

	EnableDebug()
	SetOutput(w io.Writer)
}

type defaultLogger struct {
	l     *log.Logger
	debug bool
}

// NewDefaultLogger returns a Logger writing to stderr with debug disabled.
func NewDefaultLogger() Logger {
	return &defaultLogger{
		l: log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
}

// NewDefaultLoggerWithPrefix returns a Logger whose lines carry prefix.
func NewDefaultLoggerWithPrefix(prefix string) Logger {
	return &defaultLogger{
		l: log.New(os.Stderr, prefix+" ", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
}

func (d *defaultLogger) EnableDebug() {
	d.debug = true
}

func (d *defaultLogger) SetOutput(w io.Writer) {
	d.l.SetOutput(w)
}

func (d *defaultLogger) Debug(v ...interface{}) {
	if d.debug {
		d.l.Output(2, "DEBUG "+fmt.Sprint(v...))
	}
}

func (d *defaultLogger) Debugf(format string, v ...interface{}) {
	if d.debug {
		d.l.Output(2, "DEBUG "+fmt.Sprintf(format, v...))
	}
}

func (d *defaultLogger) Info(v ...interface{}) {
	d.l.Output(2, "INFO "+fmt.Sprint(v...))
}

func (d *defaultLogger) Infof(format string, v ...interface{}) {
	d.l.Output(2, "INFO "+fmt.Sprintf(format, v...))
}

func (d *defaultLogger) Error(v ...interface{}) {
	d.l.Output(2, "ERROR "+fmt.Sprint(v...))
}

func (d *defaultLogger) Errorf(format string, v ...interface{}) {
	d.l.Output(2, "ERROR "+fmt.Sprintf(format, v...))
}

func (d *defaultLogger) Fatal(v ...interface{}) {
	d.l.Output(2, "FATAL "+fmt.Sprint(v...))
	os.Exit(1)
}

func (d *defaultLogger) Fatalf(format string, v ...interface{}) {
	d.l.Output(2, "FATAL "+fmt.Sprintf(format, v...))
	os.Exit(1)
}

func (d *defaultLogger) Panic(v ...interface{}) {
	s := fmt.Sprint(v...)
	d.l.Output(2, "PANIC "+s)
	panic(s)
}

func (d *defaultLogger) Panicf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	d.l.Output(2, "PANIC "+s)
	panic(s)
}
