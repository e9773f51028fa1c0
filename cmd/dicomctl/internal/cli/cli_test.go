package cli_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninja55/go-radx/cmd/dicomctl/internal/cli"
)

func parse(t *testing.T, args []string) (*cli.CLI, *kong.Context) {
	t.Helper()
	c := &cli.CLI{}
	parser, err := kong.New(c, kong.Name("dicomctl"))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return c, ctx
}

func TestParse_DumpCommand(t *testing.T) {
	_, ctx := parse(t, []string{"dump", "cli.go"})
	assert.Equal(t, "dump <paths>", ctx.Command())
}

func TestParse_ServeCommand(t *testing.T) {
	c, _ := parse(t, []string{"serve", "--addr", "127.0.0.1:9000"})
	assert.Equal(t, "127.0.0.1:9000", c.Serve.Addr)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 2, cli.ExitCode(&cli.ConfigError{Err: errors.New("bad yaml")}))
	assert.Equal(t, 1, cli.ExitCode(errors.New("disk full")))
}
