package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	assert.Equal(t, DefaultOptions, Build())
	assert.Equal(t, DefaultOptions, Build(nil))

	conf := Build(WithMaxEditDistance(1), WithDeterministicTies())
	assert.Equal(t, CorrectorOptions{MaxEditDistance: 1, DeterministicTies: true}, conf)

	assert.Equal(t, 0, Build(WithMaxEditDistance(-1)).MaxEditDistance)
	assert.Equal(t, 2, DefaultOptions.MaxEditDistance, "Build must not mutate the defaults")
}
