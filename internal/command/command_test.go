package command

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"herbal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "newline terminated", input: "s3cret\nrest", want: "s3cret"},
		{name: "crlf", input: "s3cret\r\n", want: "s3cret"},
		{name: "eof terminated", input: "s3cret", want: "s3cret"},
		{name: "backspace", input: "s3cx\bret\n", want: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanLine(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestScanLine_EmptyInput(t *testing.T) {
	_, err := scanLine(strings.NewReader(""))
	assert.ErrorIs(t, err, io.EOF)

	_, err = scanLine(iotest.ErrReader(assert.AnError))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigFromContext(t *testing.T) {
	_, err := configFromContext(context.Background())
	assert.Error(t, err)

	cfg := &config.Config{}
	got, err := configFromContext(context.WithValue(context.Background(), configKey{}, cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := RootCommand()

	for _, path := range [][]string{
		{"serve"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "status"},
		{"account", "register"},
		{"account", "verify"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestAccountCommands_RefuseMemoryStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory
	ctx := context.WithValue(context.Background(), configKey{}, cfg)

	for _, cmd := range []*cobra.Command{accountRegisterCommand(), accountVerifyCommand()} {
		cmd.SetContext(ctx)

		err := cmd.RunE(cmd, []string{"alice"})

		assert.ErrorIs(t, err, errVolatileStore, cmd.Name())
	}
}
