package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Builtins(t *testing.T) {
	assert.Equal(t, []string{"capacity", "churn", "lifo"}, Builtins())
}

func Test_Builtin_RunsClean(t *testing.T) {
	for _, name := range Builtins() {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name)

			var r Runner
			trace, err := r.Run(s)
			require.NoError(t, err)
			assert.NotEmpty(t, trace.Events)
		})
	}
}

func Test_Builtin_Unknown(t *testing.T) {
	_, err := Builtin("nope")
	require.ErrorIs(t, err, ErrUnknownScript)
}
