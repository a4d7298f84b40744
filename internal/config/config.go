package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const configFile = "forumview.yaml"

type Config struct {
	Server   Server   `yaml:"server"`
	Render   Render   `yaml:"render"`
	Log      Log      `yaml:"log"`
	Fixtures Fixtures `yaml:"fixtures"`
}

type Server struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	SecureCookies   bool          `yaml:"secure_cookies"` // also enables HSTS
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ExportScriptURL string        `yaml:"export_script_url" validate:"required"` // base of links in the export stylesheet
}

type Render struct {
	Language       string        `yaml:"language" validate:"required"`
	LangDir        string        `yaml:"lang_dir"`      // optional override catalogs, <lang>.yaml
	TemplatesDir   string        `yaml:"templates_dir"` // empty means embedded templates
	ReloadInterval time.Duration `yaml:"reload_interval"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

type Fixtures struct {
	Dir string `yaml:"dir"` // empty means embedded samples
}

// Default is used for every field the file leaves out.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8081",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ExportScriptURL: "/index.php",
		},
		Render: Render{
			Language: "english",
		},
		Log: Log{Level: "info"},
	}
}

func Load(configFolder string) (*Config, error) {
	configPath := path.Join(configFolder, configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("can't unmarshal config file: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
