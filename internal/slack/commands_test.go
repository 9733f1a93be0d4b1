package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("empty text defaults to help", func(t *testing.T) {
		cmd, err := ParseCommand("   ")
		require.NoError(t, err)
		assert.Equal(t, CmdHelp, cmd.Type)
	})

	t.Run("parses command with args", func(t *testing.T) {
		cmd, err := ParseCommand("editar <@U555> 2026-08-24 salida=15:00")
		require.NoError(t, err)
		assert.Equal(t, CmdEdit, cmd.Type)
		assert.Equal(t, []string{"<@U555>", "2026-08-24", "salida=15:00"}, cmd.Args)
	})

	t.Run("accepts aliases case-insensitively", func(t *testing.T) {
		for text, want := range map[string]CommandType{
			"in":          CmdEntry,
			"OUT":         CmdExit,
			"Sync":        CmdSync,
			"ENTRADA":     CmdEntry,
			"sincronizar": CmdSync,
		} {
			cmd, err := ParseCommand(text)
			require.NoError(t, err, text)
			assert.Equal(t, want, cmd.Type, text)
		}
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		_, err := ParseCommand("volar")
		assert.Error(t, err)
	})
}
