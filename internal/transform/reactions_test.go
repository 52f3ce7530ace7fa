package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectReactionsEmpty(t *testing.T) {
	assert.Equal(t, map[string]int32{}, ProjectReactions(nil))
	assert.Equal(t, map[string]int32{}, ProjectReactions([]byte(`{}`)))
}

func TestProjectReactionsCoercesNonIntegerToZero(t *testing.T) {
	out := ProjectReactions([]byte(`{"👍": 2, "bad": "oops", "float": 2.5, "null": null}`))
	assert.Equal(t, int32(2), out["👍"])
	assert.Equal(t, int32(0), out["bad"])
	assert.Equal(t, int32(0), out["float"])
	assert.Equal(t, int32(0), out["null"])
}

func TestProjectReactionsInvalidJSONReturnsEmpty(t *testing.T) {
	assert.Equal(t, map[string]int32{}, ProjectReactions([]byte(`not json`)))
}
