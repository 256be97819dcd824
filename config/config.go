package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. DECKGEN_OUTPUT.
const EnvPrefix = "DECKGEN"

// DefaultConfigName is looked up in the working directory when no explicit
// config file is given.
const DefaultConfigName = "deckgen"

// Config structure
type Config struct {
	Output        string   `json:"output" mapstructure:"output"`
	ImagesDir     string   `json:"imagesDir" mapstructure:"images_dir"`       // Slide PNGs, skipped if empty
	PDF           string   `json:"pdf" mapstructure:"pdf"`                    // Printable handout
	Notes         string   `json:"notes" mapstructure:"notes"`                // Text-only reading copy
	Outline       string   `json:"outline" mapstructure:"outline"`            // Outline workbook (.xlsx)
	Handout       string   `json:"handout" mapstructure:"handout"`            // Speaker handout (.docx)
	HistoryDir    string   `json:"historyDir" mapstructure:"history_dir"`     // Build history database directory
	LogDir        string   `json:"logDir" mapstructure:"log_dir"`             // Run log directory, console only if empty
	Verify        bool     `json:"verify" mapstructure:"verify"`              // Read the written file back and compare structure
	Language      string   `json:"language" mapstructure:"language"`          // "English" or "日本語"
	EastAsianFont string   `json:"eastAsianFont" mapstructure:"east_asian_font"`
	ImageWidth    int      `json:"imageWidth" mapstructure:"image_width"`
	FontDirs      []string `json:"fontDirs" mapstructure:"font_dirs"`
}

func setDefaults(v *viper.Viper, output string) {
	v.SetDefault("output", output)
	v.SetDefault("images_dir", "")
	v.SetDefault("pdf", "")
	v.SetDefault("notes", "")
	v.SetDefault("outline", "")
	v.SetDefault("handout", "")
	v.SetDefault("history_dir", "")
	v.SetDefault("log_dir", "")
	v.SetDefault("verify", false)
	v.SetDefault("language", "English")
	v.SetDefault("east_asian_font", "")
	v.SetDefault("image_width", 1920)
	v.SetDefault("font_dirs", []string{})
}

// Load reads configuration from an optional JSON file and the environment.
// An explicit path must exist; without one, deckgen.json in the working
// directory is used when present. output is the default output file.
func Load(path, output string) (Config, error) {
	v := viper.New()
	setDefaults(v, output)

	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Output == "" {
		c.Output = output
	}
	return c, nil
}
