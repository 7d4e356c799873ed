package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	calls []string
}

func (l *recordingLogger) Info(format string, v ...interface{})  {}
func (l *recordingLogger) Debug(format string, v ...interface{}) {}
func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.calls = append(l.calls, "error: "+fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Sync() { l.calls = append(l.calls, "sync") }

func TestFatalSyncsBeforeExit(t *testing.T) {
	log := &recordingLogger{}
	code := -1
	exit = func(c int) {
		log.calls = append(log.calls, "exit")
		code = c
	}
	t.Cleanup(func() { exit = os.Exit })

	fatal(log, "Failed to start server: %v", "address in use")

	assert.Equal(t, 1, code)
	assert.Equal(t, []string{"error: Failed to start server: address in use", "sync", "exit"}, log.calls)
}
