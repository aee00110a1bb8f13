package hmm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerValues(t *testing.T) {
	assert.Equal(t, 1, int(First))
	assert.Equal(t, 2, int(Second))
	assert.False(t, Winner(0).IsValid())
}

func TestWinnerString(t *testing.T) {
	tests := []struct {
		w    Winner
		want string
	}{
		{First, "First"},
		{Second, "Second"},
		{Winner(0), "Winner(0)"},
		{Winner(3), "Winner(3)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.w.String())
	}
}

func TestWinnerJSON(t *testing.T) {
	for _, w := range []Winner{First, Second} {
		data, err := json.Marshal(w)
		require.NoError(t, err)
		assert.Equal(t, `"`+w.String()+`"`, string(data))

		var back Winner
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, w, back)
	}
}

func TestWinnerInvalid(t *testing.T) {
	_, err := json.Marshal(Winner(0))
	assert.Error(t, err)

	var w Winner
	assert.Error(t, json.Unmarshal([]byte(`"Third"`), &w))
	assert.Error(t, json.Unmarshal([]byte(`1`), &w))
	assert.Error(t, w.UnmarshalText([]byte("first")))
}

func TestComparisonJSON(t *testing.T) {
	data, err := json.Marshal(Comparison{LogFirst: -1, LogSecond: -2, Winner: First})
	require.NoError(t, err)
	assert.JSONEq(t, `{"log_first":-1,"log_second":-2,"winner":"First","tie":false}`, string(data))
}
