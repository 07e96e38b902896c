package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "strided", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"version", "probe", "dump"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "strided v")
}

func TestDumpCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"dump", "--shape", "2x3"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "RawTensor[float32][2 3] on CPU")
	assert.Contains(t, out.String(), "strides: [3 1], contiguous: true")
	assert.Contains(t, out.String(), "[[0 1 2]")
}

func TestDumpCommandTransposed(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"dump", "--shape", "2x3", "--transpose"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "RawTensor[float32][3 2] on CPU")
	assert.Contains(t, out.String(), "strides: [1 3], contiguous: false")
}

func TestDumpCommandRejectsBadShape(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"dump", "--shape", "2xzero"})

	require.Error(t, cmd.Execute())
}

func TestParseShape(t *testing.T) {
	shape, err := parseShape("2x3x4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, []int(shape))

	_, err = parseShape("2x-1")
	require.Error(t, err)
	_, err = parseShape("")
	require.Error(t, err)
}
