package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Organization sizing
	TotalUsers              int    `mapstructure:"SIM_TOTAL_USERS"`
	TargetTeamSize          int    `mapstructure:"SIM_TARGET_TEAM_SIZE"`
	OrganizationName        string `mapstructure:"SIM_ORGANIZATION_NAME"`
	DefaultOrganizationName string `mapstructure:"SIM_DEFAULT_ORGANIZATION_NAME"`
	Seed                    uint64 `mapstructure:"SIM_SEED"`
	VocabularyFile          string `mapstructure:"SIM_VOCABULARY_FILE"`
	MaxEmailAttempts        int    `mapstructure:"SIM_MAX_EMAIL_ATTEMPTS"`

	// Project and task shape
	MinProjectsPerTeam  int     `mapstructure:"SIM_MIN_PROJECTS_PER_TEAM"`
	MaxProjectsPerTeam  int     `mapstructure:"SIM_MAX_PROJECTS_PER_TEAM"`
	MinTasksPerSection  int     `mapstructure:"SIM_MIN_TASKS_PER_SECTION"`
	MaxTasksPerSection  int     `mapstructure:"SIM_MAX_TASKS_PER_SECTION"`
	TaskMaxAgeDays      int     `mapstructure:"SIM_TASK_MAX_AGE_DAYS"`
	TaskDurationMu      float64 `mapstructure:"SIM_TASK_DURATION_MU"`
	TaskDurationSigma   float64 `mapstructure:"SIM_TASK_DURATION_SIGMA"`
	TaskDurationMinDays float64 `mapstructure:"SIM_TASK_DURATION_MIN_DAYS"`
	TaskDurationMaxDays float64 `mapstructure:"SIM_TASK_DURATION_MAX_DAYS"`
	AssignmentRate      float64 `mapstructure:"SIM_ASSIGNMENT_RATE"`
	FallbackPoolSize    int     `mapstructure:"SIM_FALLBACK_POOL_SIZE"`
	CustomFieldRate     float64 `mapstructure:"SIM_CUSTOM_FIELD_RATE"`

	// Completion-probability overrides
	DoneProbability    float64  `mapstructure:"SIM_DONE_PROBABILITY"`
	DoneKeywords       []string `mapstructure:"SIM_DONE_KEYWORDS"`
	BacklogProbability float64  `mapstructure:"SIM_BACKLOG_PROBABILITY"`
	BacklogKeywords    []string `mapstructure:"SIM_BACKLOG_KEYWORDS"`

	// Company name source
	CompanySourceURL       string `mapstructure:"COMPANY_SOURCE_URL"`
	CompanyFetchLimit      int    `mapstructure:"COMPANY_FETCH_LIMIT"`
	CompanyFetchTimeoutSec int    `mapstructure:"COMPANY_FETCH_TIMEOUT_SEC"`

	// Generative content backend (OpenAI-compatible)
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL     string `mapstructure:"OPENAI_BASE_URL"`
	ContentTimeoutSec int    `mapstructure:"CONTENT_TIMEOUT_SEC"`

	// Prometheus textfile written after each generate run; empty disables it
	MetricsTextfile string `mapstructure:"METRICS_TEXTFILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "org_simulation")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Organization sizing defaults
	viper.SetDefault("SIM_TOTAL_USERS", 5000)
	viper.SetDefault("SIM_TARGET_TEAM_SIZE", 12)
	viper.SetDefault("SIM_ORGANIZATION_NAME", "")
	viper.SetDefault("SIM_DEFAULT_ORGANIZATION_NAME", "Globex Corp")
	viper.SetDefault("SIM_SEED", 0)
	viper.SetDefault("SIM_VOCABULARY_FILE", "")
	viper.SetDefault("SIM_MAX_EMAIL_ATTEMPTS", 100)

	// Project and task defaults
	viper.SetDefault("SIM_MIN_PROJECTS_PER_TEAM", 1)
	viper.SetDefault("SIM_MAX_PROJECTS_PER_TEAM", 4)
	viper.SetDefault("SIM_MIN_TASKS_PER_SECTION", 3)
	viper.SetDefault("SIM_MAX_TASKS_PER_SECTION", 8)
	viper.SetDefault("SIM_TASK_MAX_AGE_DAYS", 90)
	viper.SetDefault("SIM_TASK_DURATION_MU", 0.5)
	viper.SetDefault("SIM_TASK_DURATION_SIGMA", 0.8)
	viper.SetDefault("SIM_TASK_DURATION_MIN_DAYS", 0.1)
	viper.SetDefault("SIM_TASK_DURATION_MAX_DAYS", 60.0)
	viper.SetDefault("SIM_ASSIGNMENT_RATE", 0.85)
	viper.SetDefault("SIM_FALLBACK_POOL_SIZE", 3)
	viper.SetDefault("SIM_CUSTOM_FIELD_RATE", 0.7)

	// Completion-probability defaults
	viper.SetDefault("SIM_DONE_PROBABILITY", 0.98)
	viper.SetDefault("SIM_DONE_KEYWORDS", []string{"done", "complete", "shipped", "released"})
	viper.SetDefault("SIM_BACKLOG_PROBABILITY", 0.05)
	viper.SetDefault("SIM_BACKLOG_KEYWORDS", []string{"backlog", "todo", "idea"})

	// Company source defaults
	viper.SetDefault("COMPANY_SOURCE_URL", "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies")
	viper.SetDefault("COMPANY_FETCH_LIMIT", 5)
	viper.SetDefault("COMPANY_FETCH_TIMEOUT_SEC", 10)

	// Content backend defaults - empty key means the mock generator is used
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("CONTENT_TIMEOUT_SEC", 20)

	viper.SetDefault("METRICS_TEXTFILE", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TotalUsers < 1 {
		return fmt.Errorf("SIM_TOTAL_USERS must be at least 1")
	}
	if config.TargetTeamSize < 1 {
		return fmt.Errorf("SIM_TARGET_TEAM_SIZE must be at least 1")
	}
	if config.MinProjectsPerTeam < 0 || config.MaxProjectsPerTeam < config.MinProjectsPerTeam {
		return fmt.Errorf("invalid project range [%d, %d]", config.MinProjectsPerTeam, config.MaxProjectsPerTeam)
	}
	if config.MinTasksPerSection < 0 || config.MaxTasksPerSection < config.MinTasksPerSection {
		return fmt.Errorf("invalid tasks-per-section range [%d, %d]", config.MinTasksPerSection, config.MaxTasksPerSection)
	}
	if config.TaskDurationMinDays <= 0 || config.TaskDurationMaxDays < config.TaskDurationMinDays {
		return fmt.Errorf("invalid task duration bounds [%g, %g]", config.TaskDurationMinDays, config.TaskDurationMaxDays)
	}
	if config.CompanyFetchTimeoutSec < 1 {
		return fmt.Errorf("COMPANY_FETCH_TIMEOUT_SEC must be at least 1")
	}
	if config.ContentTimeoutSec < 1 {
		return fmt.Errorf("CONTENT_TIMEOUT_SEC must be at least 1")
	}

	probabilities := map[string]float64{
		"SIM_DONE_PROBABILITY":    config.DoneProbability,
		"SIM_BACKLOG_PROBABILITY": config.BacklogProbability,
		"SIM_ASSIGNMENT_RATE":     config.AssignmentRate,
		"SIM_CUSTOM_FIELD_RATE":   config.CustomFieldRate,
	}
	for key, p := range probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", key, p)
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasContentBackend reports whether a generative content backend is configured
func (c *Config) HasContentBackend() bool {
	return c.OpenAIAPIKey != ""
}
