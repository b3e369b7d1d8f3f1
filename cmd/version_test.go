package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{
			name: "released build",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}},
			ok:   true,
			want: "fixturegen version v0.3.0\ngo version go1.25.1\n",
		},
		{
			name: "local build",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "(devel)"}},
			ok:   true,
			want: "fixturegen version unknown\ngo version go1.25.1\n",
		},
		{
			name: "no build info",
			ok:   false,
			want: "fixturegen version unknown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetErr(out)

			printVersion(cmd, tt.info, tt.ok)

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Regexp(t, `^fixturegen version \S+\n`, out.String())

	cmd.SetArgs([]string{"version", "extra"})
	require.Error(t, cmd.Execute())
}
