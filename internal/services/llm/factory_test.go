package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/models"
)

func TestNewClientOpenAI(t *testing.T) {
	config := common.NewDefaultConfig()
	config.OpenAI.APIKey = "test-key"

	client, err := NewClient(config)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
}

func TestNewClientClaude(t *testing.T) {
	config := common.NewDefaultConfig()
	config.Generation.Provider = "claude"
	config.Claude.APIKey = "test-key"

	client, err := NewClient(config)
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, client)
}

func TestNewClientUnknownProvider(t *testing.T) {
	config := common.NewDefaultConfig()
	config.Generation.Provider = "llama"

	_, err := NewClient(config)
	require.Error(t, err)
	assert.Equal(t, models.ErrConfiguration, models.KindOf(err))
}
