package config

import (
	"os"
	"path/filepath"
	"testing"

	"HealthPredict/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
appName = "HealthPredict"
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, c.MainConfig.Port)
	assert.Equal(t, 24, c.JwtConfig.ExpireHours)
	assert.Equal(t, "HealthPredict", c.JwtConfig.Issuer)
	assert.Equal(t, "http://localhost:8000", c.PredictorConfig.BaseURL)
	assert.Equal(t, "gemini", c.AIConfig.ChatModel.Provider)
	assert.Equal(t, constants.SummaryCacheTTLSeconds, c.AIConfig.SummaryCacheTTL)
	assert.Equal(t, constants.AssessmentTopic, c.KafkaConfig.AssessmentTopic)
	assert.Equal(t, []string{"*"}, c.MainConfig.AllowOrigins)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
port = 9000

[predictorConfig]
baseURL = "http://file-value:8000"

[aiConfig.chatModel]
provider = "gemini"
apiKey = "from-file"
`)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("PREDICTOR_BASE_URL", "http://predictor:8000")
	t.Setenv("PORT", "9100")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.AIConfig.ChatModel.APIKey)
	assert.Equal(t, "http://predictor:8000", c.PredictorConfig.BaseURL)
	assert.Equal(t, 9100, c.MainConfig.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaConfig.Brokers)
}

func TestLoadOpenAIKeyFollowsProvider(t *testing.T) {
	path := writeConfig(t, `
[aiConfig.chatModel]
provider = "openai"
`)
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai-key", c.AIConfig.ChatModel.APIKey)
}

func TestLoadMissingFileStillReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 8080, c.MainConfig.Port)
}
