package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "moviematch.yaml"

type DataConfig struct {
	Movies     string `yaml:"movies"`
	Embeddings string `yaml:"embeddings"`
}

type EmbeddingsConfig struct {
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	APIKey    string        `yaml:"api_key,omitempty"`
	BaseURL   string        `yaml:"base_url,omitempty"`
	Timeout   time.Duration `yaml:"timeout"`
	BatchSize int           `yaml:"batch_size"`
}

type SearchConfig struct {
	TopK    int    `yaml:"top_k"`
	Default string `yaml:"default_query"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Config struct {
	Data       DataConfig       `yaml:"data"`
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
	Search     SearchConfig     `yaml:"search"`
	Log        LogConfig        `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Movies:     "cleaned_movies.csv",
			Embeddings: "movie_embeddings.npy",
		},
		Embeddings: EmbeddingsConfig{
			Model:     "text-embedding-3-small",
			Dimension: 512,
			Timeout:   15 * time.Second,
			BatchSize: 64,
		},
		Search: SearchConfig{
			TopK:    5,
			Default: "A giant shark attacks a beach town",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "moviematch.log",
		},
	}
}

// LoadEnv reads a .env file from the working directory when one exists.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Data.Movies, "MOVIEMATCH_MOVIES")
	setString(&c.Data.Embeddings, "MOVIEMATCH_EMBEDDINGS")
	setString(&c.Embeddings.Model, "MOVIEMATCH_EMBEDDING_MODEL")
	setString(&c.Embeddings.APIKey, "OPENAI_API_KEY")
	setString(&c.Embeddings.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Log.Level, "MOVIEMATCH_LOG_LEVEL")
	setString(&c.Log.File, "MOVIEMATCH_LOG_FILE")

	if v := os.Getenv("MOVIEMATCH_TOP_K"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MOVIEMATCH_TOP_K: %w", err)
		}
		c.Search.TopK = k
	}

	if v := os.Getenv("MOVIEMATCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MOVIEMATCH_TIMEOUT: %w", err)
		}
		c.Embeddings.Timeout = d
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Data.Movies == "" {
		errs = append(errs, errors.New("data.movies is required"))
	}
	if c.Data.Embeddings == "" {
		errs = append(errs, errors.New("data.embeddings is required"))
	}
	if c.Embeddings.Dimension <= 0 {
		errs = append(errs, fmt.Errorf("embeddings.dimension must be positive, got %d", c.Embeddings.Dimension))
	}
	if c.Embeddings.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("embeddings.timeout must be positive, got %s", c.Embeddings.Timeout))
	}
	if c.Search.TopK <= 0 {
		errs = append(errs, fmt.Errorf("search.top_k must be positive, got %d", c.Search.TopK))
	}
	return errors.Join(errs...)
}
