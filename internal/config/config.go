package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ScrapeConfig struct {
	BaseURL           string  `yaml:"base_url"`
	SearchURL         string  `yaml:"search_url"`
	Country           string  `yaml:"country"`
	MaxPages          int     `yaml:"max_pages"`
	Workers           int     `yaml:"workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	PageDelaySeconds  int     `yaml:"page_delay_seconds"`
	UserAgent         string  `yaml:"user_agent"`
}

// PageDelay is the pause between listing pages.
func (s ScrapeConfig) PageDelay() time.Duration {
	return time.Duration(s.PageDelaySeconds) * time.Second
}

type ExportConfig struct {
	JSONFile string `yaml:"json_file"`
	CSVFile  string `yaml:"csv_file"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scrape ScrapeConfig `yaml:"scrape"`
	Export ExportConfig `yaml:"export"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
