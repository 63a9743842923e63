package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	errorLogger  *log.Logger
	errorLogPath string
	errorLogOnce sync.Once

	debugLogger  *log.Logger
	debugLogPath string
	debugLogOnce sync.Once

	// logDir is where log files are created on first use.
	logDir = "logs"
)

func setupLogging(debug bool) {
	ts := time.Now().Format("20060102-150405")

	errorLogPath = filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errorLogOnce = sync.Once{}
	errorLogger = log.New(os.Stdout, "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug)
}

// openLogFile tees l into path the first time it is called for that logger.
// Logging keeps going to stdout if the file cannot be created.
func openLogFile(l *log.Logger, path string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		l.Printf("could not create log directory: %v", err)
		return
	}
	if f, err := os.Create(path); err == nil {
		l.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

func logError(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	errorLogOnce.Do(func() {
		openLogFile(errorLogger, errorLogPath)
		log.SetOutput(errorLogger.Writer())
	})
	errorLogger.Printf(format, v...)
}

func logWarn(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	errorLogOnce.Do(func() {
		openLogFile(errorLogger, errorLogPath)
		log.SetOutput(errorLogger.Writer())
	})
	errorLogger.Printf("warning: %s", fmt.Sprintf(format, v...))
}

func logDebug(format string, v ...interface{}) {
	if debugLogger == nil {
		return
	}
	debugLogOnce.Do(func() {
		openLogFile(debugLogger, debugLogPath)
	})
	debugLogger.Printf(format, v...)
}

func setDebugLogging(enabled bool) {
	if enabled {
		ts := time.Now().Format("20060102-150405")
		debugLogPath = filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
		debugLogOnce = sync.Once{}
		debugLogger = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		debugLogger = nil
	}
}
