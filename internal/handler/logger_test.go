package handler

import (
	"strings"
	"sync"
)

// recordingLogger keeps "LEVEL message" lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+msg)
}

func (l *recordingLogger) Info(msg string, fields ...interface{})             { l.add("INFO", msg) }
func (l *recordingLogger) Error(msg string, err error, fields ...interface{}) { l.add("ERROR", msg) }
func (l *recordingLogger) Debug(msg string, fields ...interface{})            { l.add("DEBUG", msg) }
func (l *recordingLogger) Warn(msg string, fields ...interface{})             { l.add("WARN", msg) }

func (l *recordingLogger) contains(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.HasPrefix(line, level+" ") && strings.Contains(line, msg) {
			return true
		}
	}
	return false
}
