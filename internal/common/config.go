package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ternarybob/respondo/internal/models"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Ingest      IngestConfig     `toml:"ingest"`
	OCR         OCRConfig        `toml:"ocr"`
	Pinecone    PineconeConfig   `toml:"pinecone"`
	OpenAI      OpenAIConfig     `toml:"openai"`
	Gemini      GeminiConfig     `toml:"gemini"`
	Claude      ClaudeConfig     `toml:"claude"`
	Embedding   EmbeddingConfig  `toml:"embedding"`
	Generation  GenerationConfig `toml:"generation"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// IngestConfig controls the chunking parameters and where uploads are
// spooled while a single request processes them.
type IngestConfig struct {
	ChunkSize    int    `toml:"chunk_size"`    // Max chunk length in characters (default: 500)
	ChunkOverlap int    `toml:"chunk_overlap"` // Overlap carried between consecutive chunks (default: 50)
	TempDir      string `toml:"temp_dir"`      // Spool directory for uploads (default: OS temp)
}

// OCRConfig configures the tesseract OCR pass for image uploads
type OCRConfig struct {
	Languages []string `toml:"languages"` // Tesseract language codes (default: ["eng"])
}

// PineconeConfig contains the external vector index connection settings
type PineconeConfig struct {
	APIKey    string        `toml:"api_key"`    // Pinecone API key
	IndexHost string        `toml:"index_host"` // Index endpoint, e.g. https://myindex-abc123.svc.us-east-1.pinecone.io
	Namespace string        `toml:"namespace"`  // Optional namespace within the index
	Timeout   time.Duration `toml:"timeout"`    // HTTP request timeout (default: 30s)
}

// OpenAIConfig contains OpenAI API configuration for embeddings and chat
type OpenAIConfig struct {
	APIKey         string `toml:"api_key"`         // OpenAI API key
	EmbeddingModel string `toml:"embedding_model"` // Embedding model (default: "text-embedding-3-small")
	ChatModel      string `toml:"chat_model"`      // Chat model (default: "gpt-4o-mini")
	Dimension      int    `toml:"dimension"`       // Embedding dimension (default: 1536)
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey         string `toml:"api_key"`         // Google Gemini API key
	Model          string `toml:"model"`           // Chat model (default: "gemini-2.0-flash")
	EmbeddingModel string `toml:"embedding_model"` // Embedding model (default: "gemini-embedding-001")
	Dimension      int    `toml:"dimension"`       // Embedding output dimensionality (default: 768)
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey string `toml:"api_key"` // Anthropic API key
	Model  string `toml:"model"`   // Model for completions (default: "claude-haiku-3-5-20241022")
}

// EmbeddingConfig selects the embedding provider
type EmbeddingConfig struct {
	Provider string `toml:"provider"` // "openai" (default) or "gemini"
}

// GenerationConfig selects the completion provider
type GenerationConfig struct {
	Provider string `toml:"provider"` // "openai" (default), "claude" or "gemini"
}

// NewDefaultConfig creates a configuration with default values.
// Pipeline sampling parameters are fixed in the query service; only
// deployment-facing settings are exposed here.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8000,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Ingest: IngestConfig{
			ChunkSize:    500,
			ChunkOverlap: 50,
		},
		OCR: OCRConfig{
			Languages: []string{"eng"},
		},
		Pinecone: PineconeConfig{
			Timeout: 30 * time.Second,
		},
		OpenAI: OpenAIConfig{
			EmbeddingModel: "text-embedding-3-small",
			ChatModel:      "gpt-4o-mini",
			Dimension:      1536,
		},
		Gemini: GeminiConfig{
			Model:          "gemini-2.0-flash",
			EmbeddingModel: "gemini-embedding-001",
			Dimension:      768,
		},
		Claude: ClaudeConfig{
			Model: "claude-haiku-3-5-20241022",
		},
		Embedding: EmbeddingConfig{
			Provider: "openai",
		},
		Generation: GenerationConfig{
			Provider: "openai",
		},
	}
}

// LoadFromFiles loads configuration from files with priority:
// defaults -> file1 -> file2 -> ... -> env. Later files override earlier
// files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// Provider keys also honor their vendors' conventional variable names so
// a plain .env file works without RESPONDO_ prefixes.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("RESPONDO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("RESPONDO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("RESPONDO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if level := os.Getenv("RESPONDO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if size := os.Getenv("RESPONDO_CHUNK_SIZE"); size != "" {
		if s, err := strconv.Atoi(size); err == nil && s > 0 {
			config.Ingest.ChunkSize = s
		}
	}
	if overlap := os.Getenv("RESPONDO_CHUNK_OVERLAP"); overlap != "" {
		if o, err := strconv.Atoi(overlap); err == nil && o >= 0 {
			config.Ingest.ChunkOverlap = o
		}
	}
	if dir := os.Getenv("RESPONDO_TEMP_DIR"); dir != "" {
		config.Ingest.TempDir = dir
	}

	if apiKey := os.Getenv("PINECONE_API_KEY"); apiKey != "" {
		config.Pinecone.APIKey = apiKey
	}
	if apiKey := os.Getenv("RESPONDO_PINECONE_API_KEY"); apiKey != "" {
		config.Pinecone.APIKey = apiKey // RESPONDO_ prefix takes priority
	}
	if host := os.Getenv("PINECONE_INDEX_HOST"); host != "" {
		config.Pinecone.IndexHost = host
	}
	if namespace := os.Getenv("PINECONE_NAMESPACE"); namespace != "" {
		config.Pinecone.Namespace = namespace
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if apiKey := os.Getenv("RESPONDO_OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if model := os.Getenv("RESPONDO_OPENAI_CHAT_MODEL"); model != "" {
		config.OpenAI.ChatModel = model
	}
	if model := os.Getenv("RESPONDO_OPENAI_EMBEDDING_MODEL"); model != "" {
		config.OpenAI.EmbeddingModel = model
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("RESPONDO_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("RESPONDO_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}

	if provider := os.Getenv("RESPONDO_EMBEDDING_PROVIDER"); provider != "" {
		config.Embedding.Provider = provider
	}
	if provider := os.Getenv("RESPONDO_GENERATION_PROVIDER"); provider != "" {
		config.Generation.Provider = provider
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks that the credentials the selected providers need are
// present. A missing credential is fatal at startup.
func (c *Config) Validate() error {
	if c.Pinecone.APIKey == "" {
		return models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("pinecone api_key is required (PINECONE_API_KEY)"))
	}
	if c.Pinecone.IndexHost == "" {
		return models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("pinecone index_host is required (PINECONE_INDEX_HOST)"))
	}

	switch c.Embedding.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return models.NewPipelineError(models.ErrConfiguration, "config",
				fmt.Errorf("openai api_key is required for embedding provider %q", c.Embedding.Provider))
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return models.NewPipelineError(models.ErrConfiguration, "config",
				fmt.Errorf("gemini api_key is required for embedding provider %q", c.Embedding.Provider))
		}
	default:
		return models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("unknown embedding provider %q", c.Embedding.Provider))
	}

	switch c.Generation.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return models.NewPipelineError(models.ErrConfiguration, "config",
				fmt.Errorf("openai api_key is required for generation provider %q", c.Generation.Provider))
		}
	case "claude":
		if c.Claude.APIKey == "" {
			return models.NewPipelineError(models.ErrConfiguration, "config",
				fmt.Errorf("claude api_key is required for generation provider %q", c.Generation.Provider))
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return models.NewPipelineError(models.ErrConfiguration, "config",
				fmt.Errorf("gemini api_key is required for generation provider %q", c.Generation.Provider))
		}
	default:
		return models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("unknown generation provider %q", c.Generation.Provider))
	}

	if c.Ingest.ChunkOverlap >= c.Ingest.ChunkSize {
		return models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)", c.Ingest.ChunkOverlap, c.Ingest.ChunkSize))
	}

	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
