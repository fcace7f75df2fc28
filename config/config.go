package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the digest pipeline. It is built
// once at process start and passed by reference; core packages never
// read the environment themselves.
type Config struct {
	General  GeneralConfig  `mapstructure:"general"`
	Team     TeamConfig     `mapstructure:"team"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Compose  ComposeConfig  `mapstructure:"compose"`
	Email    EmailConfig    `mapstructure:"email"`
	Server   ServerConfig   `mapstructure:"server"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	LogLevel string `mapstructure:"log_level"`
	// DryRun writes the rendered report to disk instead of emailing it.
	DryRun      bool   `mapstructure:"dry_run"`
	PreviewPath string `mapstructure:"preview_path"`
}

// TeamConfig identifies the team the digest covers. It only shapes the
// feed queries and the prompt role text.
type TeamConfig struct {
	Name      string `mapstructure:"name"`
	Subreddit string `mapstructure:"subreddit"`
	NewsQuery string `mapstructure:"news_query"`
}

func (t TeamConfig) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team.name is required")
	}
	if strings.TrimSpace(t.Subreddit) == "" {
		return fmt.Errorf("team.subreddit is required")
	}
	if strings.TrimSpace(t.NewsQuery) == "" {
		return fmt.Errorf("team.news_query is required")
	}
	return nil
}

// SourcesConfig bounds the collectors.
type SourcesConfig struct {
	NewsLimit      int           `mapstructure:"news_limit"`
	CommunityLimit int           `mapstructure:"community_limit"`
	SeasonalLimit  int           `mapstructure:"seasonal_limit"`
	FeedTimeout    time.Duration `mapstructure:"feed_timeout"`
	// ExpandArticles is how many top news items get their full article
	// text fetched for LLM context. 0 disables expansion.
	ExpandArticles int    `mapstructure:"expand_articles"`
	UserAgent      string `mapstructure:"user_agent"`
}

func (s SourcesConfig) Validate() error {
	if s.NewsLimit <= 0 || s.CommunityLimit <= 0 || s.SeasonalLimit <= 0 {
		return fmt.Errorf("sources limits must be greater than zero")
	}
	if s.FeedTimeout <= 0 {
		return fmt.Errorf("sources.feed_timeout must be greater than zero")
	}
	if s.ExpandArticles < 0 {
		return fmt.Errorf("sources.expand_articles cannot be negative")
	}
	return nil
}

// LLMConfig configures the model provider used for synthesis.
type LLMConfig struct {
	Provider     string        `mapstructure:"provider"` // gemini, openai, anthropic
	APIKey       string        `mapstructure:"api_key"`
	Model        string        `mapstructure:"model"`
	Temperature  float64       `mapstructure:"temperature"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// Validate fails fast on missing credentials: a run must not silently
// fall back to the rule-based synthesis because of misconfiguration.
func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	switch l.Provider {
	case "gemini", "openai", "anthropic":
	default:
		return fmt.Errorf("llm.provider %q is not supported", l.Provider)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries cannot be negative")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be greater than zero")
	}
	return nil
}

// ComposeConfig bounds the compose stage.
type ComposeConfig struct {
	// RecordsPerCategory caps how many records per category make it
	// into the prompt.
	RecordsPerCategory int `mapstructure:"records_per_category"`
	MaxWarRoomItems    int `mapstructure:"max_war_room_items"`
	MaxKeywords        int `mapstructure:"max_keywords"`
}

func (c ComposeConfig) Validate() error {
	if c.RecordsPerCategory <= 0 {
		return fmt.Errorf("compose.records_per_category must be greater than zero")
	}
	if c.MaxWarRoomItems <= 0 {
		return fmt.Errorf("compose.max_war_room_items must be greater than zero")
	}
	if c.MaxKeywords <= 0 {
		return fmt.Errorf("compose.max_keywords must be greater than zero")
	}
	return nil
}

// EmailConfig configures SMTP delivery.
type EmailConfig struct {
	SMTPHost  string `mapstructure:"smtp_host"`
	SMTPPort  int    `mapstructure:"smtp_port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Recipient string `mapstructure:"recipient"`
}

func (e EmailConfig) Validate() error {
	if strings.TrimSpace(e.Username) == "" || strings.TrimSpace(e.Password) == "" {
		return fmt.Errorf("email.username and email.password are required (set general.dry_run for local testing)")
	}
	if e.SMTPPort <= 0 {
		return fmt.Errorf("email.smtp_port must be greater than zero")
	}
	return nil
}

// ServerConfig configures the preview/metrics HTTP listener used by the
// preview and daemon commands.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ScheduleConfig configures daemon mode.
type ScheduleConfig struct {
	Cron string `mapstructure:"cron"`
}

// Validate checks the whole config. Email credentials are only required
// when delivery is actually going to happen.
func (c *Config) Validate() error {
	if err := c.Team.Validate(); err != nil {
		return err
	}
	if err := c.Sources.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if err := c.Compose.Validate(); err != nil {
		return err
	}
	if !c.General.DryRun {
		if err := c.Email.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ForceDryRun is a LoadConfig override for commands that never deliver
// email, so credential validation is skipped regardless of the loaded
// settings.
func ForceDryRun(c *Config) {
	c.General.DryRun = true
}

// LoadConfig reads configuration from an optional config file plus
// BLEACHER_* environment variables (a .env file is honored when present)
// and validates it before anything touches the network. Overrides are
// applied after loading and before validation.
func LoadConfig(path string, overrides ...func(*Config)) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BLEACHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The file is optional unless explicitly requested; env vars
		// plus defaults are a complete configuration.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.Email.Recipient == "" {
		cfg.Email.Recipient = cfg.Email.Username
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.dry_run", false)
	v.SetDefault("general.preview_path", "report_preview.html")

	v.SetDefault("team.name", "Miami Dolphins")
	v.SetDefault("team.subreddit", "miamidolphins")
	v.SetDefault("team.news_query", "Miami+Dolphins+NFL")

	v.SetDefault("sources.news_limit", 6)
	v.SetDefault("sources.community_limit", 8)
	v.SetDefault("sources.seasonal_limit", 6)
	v.SetDefault("sources.feed_timeout", 20*time.Second)
	v.SetDefault("sources.expand_articles", 0)
	v.SetDefault("sources.user_agent", "bleacherbot/1.0")

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemma-3-27b-it")
	v.SetDefault("llm.temperature", 0.4)
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.retry_backoff", 5*time.Second)
	v.SetDefault("llm.timeout", 60*time.Second)

	v.SetDefault("compose.records_per_category", 10)
	v.SetDefault("compose.max_war_room_items", 5)
	v.SetDefault("compose.max_keywords", 6)

	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 587)

	v.SetDefault("server.address", ":10030")
	v.SetDefault("schedule.cron", "0 13 * * 1")
}
