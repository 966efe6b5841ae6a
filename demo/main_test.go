package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the action installs its logger globally
func keepGlobalLogger(t *testing.T) {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
}

func TestAppPrintsReport(t *testing.T) {
	keepGlobalLogger(t)
	logPath := filepath.Join(t.TempDir(), "spn.log")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"spn", "--log", logPath, "--logformat", "json", "--stream"}))
	assert.Equal(t, helloWorldReport, out.String())

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "starting")
	assert.Contains(t, string(logs), "stream round trip ok")
}

func TestAppReturnsConfigErrors(t *testing.T) {
	keepGlobalLogger(t)
	logPath := filepath.Join(t.TempDir(), "spn.log")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unsupported level", []string{"spn", "--log", logPath, "--loglevel", "trace"}, errInvalidLogLevel},
		{"unsupported format", []string{"spn", "--log", logPath, "--logformat", "xml"}, errInvalidLogFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			app := newApp()
			app.Writer = &out
			err := app.Run(tc.args)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, out.String())
		})
	}

	t.Run("missing config file", func(t *testing.T) {
		app := newApp()
		app.Writer = &bytes.Buffer{}
		assert.Error(t, app.Run([]string{"spn", "-c", filepath.Join(t.TempDir(), "missing.json")}))
	})
}

func TestWarnFailureWritesToGivenWriter(t *testing.T) {
	var stderr bytes.Buffer
	warnFailure(&stderr, errNotRecovered)
	assert.Contains(t, stderr.String(), errNotRecovered.Error())
}
