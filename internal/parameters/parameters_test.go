package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("alpha=0.1,init,save=weights.bin")
	assert.Equal(t, Params{"alpha": "0.1", "init": "", "save": "weights.bin"}, params)

	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("alpha=0.25,seed=42,depth=3,init,frozen=false")

	alpha, err := GetParamOr(params, "alpha", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), alpha)

	seed, err := GetParamOr(params, "seed", uint64(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), seed)

	depth, err := GetParamOr(params, "depth", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	// A bool key without value means true; "false" means false.
	init, err := GetParamOr(params, "init", false)
	require.NoError(t, err)
	assert.True(t, init)
	frozen, err := GetParamOr(params, "frozen", true)
	require.NoError(t, err)
	assert.False(t, frozen)

	// Missing keys fall back to the default.
	missing, err := GetParamOr(params, "missing", float32(7))
	require.NoError(t, err)
	assert.Equal(t, float32(7), missing)
}

func TestGetParamOrMalformed(t *testing.T) {
	params := NewFromConfigString("alpha=fast,seed=-1")
	_, err := GetParamOr(params, "alpha", float32(0))
	assert.Error(t, err)
	_, err = GetParamOr(params, "seed", uint64(0))
	assert.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("alpha=0.1,init")
	alpha, err := PopParamOr(params, "alpha", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), alpha)
	_, found := params["alpha"]
	assert.False(t, found)

	// Popping everything understood leaves nothing behind.
	_, err = PopParamOr(params, "init", false)
	require.NoError(t, err)
	assert.Empty(t, params)
}
