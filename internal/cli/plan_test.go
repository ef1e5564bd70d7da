package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestlab/rilsim/internal/engine"
)

func TestParseOperation(t *testing.T) {
	op, err := parseOperation("10:25")
	require.NoError(t, err)
	assert.Equal(t, engine.Operation{Year: 10, IntensityPct: 25}, op)

	op, err = parseOperation(" 0 : 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, engine.Operation{Year: 0, IntensityPct: 12.5}, op)
}

func TestParseOperationRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "10", "ten:25", "10:heavy", "10:"} {
		_, err := parseOperation(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseOperationsPreservesOrder(t *testing.T) {
	ops, err := parseOperations([]string{"0:10", "10:10", "15:0"})
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, 15, ops[2].Year)
	assert.False(t, ops[2].Active())
}

func TestSplitAddr(t *testing.T) {
	host, port, err := splitAddr("0.0.0.0:9090")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, 9090, port)

	_, _, err = splitAddr("localhost")
	assert.Error(t, err)
}
