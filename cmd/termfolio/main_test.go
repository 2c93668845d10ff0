package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
	"termfolio/internal/output"
	"termfolio/internal/services"
	"termfolio/internal/shell"
	"termfolio/internal/testutils"
)

func newScriptShell(t *testing.T, api *testutils.FakeContentAPI) *shell.Shell {
	t.Helper()
	services.ConfigureColor(false)

	v := viper.New()
	config.SetDefaults(v)
	v.Set("terminal.speed", "slow")
	loaded, err := config.Decode(v)
	require.NoError(t, err)

	sh, err := shell.Bootstrap(loaded, shell.Options{TestMode: true, API: api, Clipboard: &testutils.FakeClipboard{}})
	require.NoError(t, err)
	sh.Output = output.ModeBatch
	return sh
}

func TestRunScript(t *testing.T) {
	sh := newScriptShell(t, testutils.NewFakeContentAPI())
	ctx := context.Background()
	sh.Startup(ctx)

	script := strings.Join([]string{
		"# walk into the blog",
		"cd blog",
		"pwd",
		"",
		"./go-tips",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runScript(ctx, sh, strings.NewReader(script), &out))

	assert.Equal(t, "Changed directory to /home/visitor/blog\n/home/visitor/blog\nGo tips\n", out.String())
	assert.Equal(t, []string{"cd blog", "pwd", "./go-tips"}, sh.Env.Session.History().Lines())
}

func TestRunScriptStopsWhenCancelled(t *testing.T) {
	sh := newScriptShell(t, testutils.NewFakeContentAPI())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runScript(ctx, sh, strings.NewReader("pwd\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewMailer(t *testing.T) {
	assert.Nil(t, newMailer(config.SMTP{}))
	assert.NotNil(t, newMailer(config.SMTP{Host: "smtp.example.com", Port: 587, Username: "me@example.com"}))
}

func TestContentSource(t *testing.T) {
	assert.Equal(t, "embedded", contentSource(""))
	assert.Equal(t, "/srv/content", contentSource("/srv/content"))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range []string{"plain", "batch", "serve", "version"} {
		assert.True(t, names[name], name)
	}
	assert.NotNil(t, serveCmd.Flags().Lookup("content-dir"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("speed"))
}
