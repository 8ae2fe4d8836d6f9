package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	var p Provider = Noop{}
	assert.Equal(t, "noop", p.Name())

	recs, err := p.Generate(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestPromptsCoverCategories(t *testing.T) {
	for _, key := range []string{"function_pointer", "async_pattern"} {
		assert.NotEmpty(t, Prompts[key], key)
	}
}
