package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	WordList    WordListConfig    `mapstructure:"word_list"`
	Card        CardConfig        `mapstructure:"card"`
	Audio       AudioConfig       `mapstructure:"audio"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Theme       ThemeConfig       `mapstructure:"theme"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Outputs     OutputsConfig     `mapstructure:"outputs"`
	Templates   TemplatesConfig   `mapstructure:"templates"`
}

type WordListConfig struct {
	// Location is a local path or an http(s) URL.
	Location       string `mapstructure:"location"`
	Charset        string `mapstructure:"charset" validate:"omitempty,charset"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type CardConfig struct {
	DefaultLevel    string `mapstructure:"default_level"`
	NoPhrasesText   string `mapstructure:"no_phrases_text"`
	NoSentencesText string `mapstructure:"no_sentences_text"`
	NoContentText   string `mapstructure:"no_content_text"`
}

type AudioConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	Command        string `mapstructure:"command" validate:"required_if=Enabled true"`
	CacheDirectory string `mapstructure:"cache_directory"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"gte=1"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	AutoplayAccent string `mapstructure:"autoplay_accent" validate:"oneof=us uk"`
}

type PreferencesConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=file database"`
	File    string `mapstructure:"file"`
}

type ThemeConfig struct {
	// Ambient overrides the terminal background hint: "dark", "light" or empty.
	Ambient string `mapstructure:"ambient" validate:"omitempty,oneof=dark light"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	Path            string            `mapstructure:"path"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
}

type TemplatesConfig struct {
	DeckTemplate string `mapstructure:"deck_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordcard")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("word_list.location", "CET4luan_2.json")
	v.SetDefault("word_list.charset", "utf-8")
	v.SetDefault("word_list.timeout_seconds", 30)
	v.SetDefault("card.default_level", "4级")
	v.SetDefault("card.no_phrases_text", "No related phrases")
	v.SetDefault("card.no_sentences_text", "No example sentences")
	v.SetDefault("card.no_content_text", "No words to show")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.base_url", "https://dict.youdao.com/dictvoice")
	v.SetDefault("audio.command", "mpg123 -q")
	v.SetDefault("audio.cache_directory", filepath.Join("cache", "audio"))
	v.SetDefault("audio.retry_attempts", 3)
	v.SetDefault("audio.timeout_seconds", 10)
	v.SetDefault("audio.autoplay_accent", "us")
	v.SetDefault("preferences.backend", "file")
	v.SetDefault("preferences.file", "preferences.yml")
	v.SetDefault("theme.ambient", "")
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", "wordcard.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")
	v.SetDefault("outputs.directory", filepath.Join("outputs", "deck"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.deck_template", "")

	if err := v.BindEnv("word_list.location", "WORDCARD_WORD_LIST"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDCARD_WORD_LIST environment variable: %w", err)
	}
	if err := v.BindEnv("theme.ambient", "WORDCARD_AMBIENT_THEME"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDCARD_AMBIENT_THEME environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
