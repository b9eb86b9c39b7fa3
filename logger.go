package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger
)

// stdoutWriter mirrors logs to stdout only when someone is watching.
func stdoutWriter() io.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return os.Stdout
	}
	return io.Discard
}

func logFile(kind string) (io.Writer, error) {
	logDir := filepath.Join(baseDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	ts := time.Now().Format("20060102-150405")
	return os.Create(filepath.Join(logDir, fmt.Sprintf("%s-%s.log", kind, ts)))
}

func setupLogging(debug bool) {
	out := stdoutWriter()
	errWriter := out
	if f, err := logFile("error"); err == nil {
		errWriter = io.MultiWriter(out, f)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	errorLogger = log.New(errWriter, "", log.LstdFlags)
	log.SetOutput(errWriter)

	setDebugLogging(debug)
}

func setDebugLogging(enabled bool) {
	if !enabled {
		debugLogger = nil
		return
	}
	dbgWriter := stdoutWriter()
	if f, err := logFile("debug"); err == nil {
		dbgWriter = io.MultiWriter(dbgWriter, f)
	}
	debugLogger = log.New(dbgWriter, "", log.LstdFlags|log.Lmicroseconds)
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
	}
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
