package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "dbview-debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to a debug file when enabled
// and discards it otherwise. The terminal owns stdout, so logs never
// go there. Returns the open file (nil when disabled); caller closes.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix so a
// fresh file starts under the size cap. Rotation failures are ignored;
// worst case the log keeps growing.
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	_ = os.Rename(logPath, logPath+"."+stamp+".log")
}
