package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
	"proxylist/internal/shared/types"
)

const (
	DefaultURL            = "https://tomcat1235.nyc.mn/proxy_list"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeoutSeconds = 30
	DefaultOutputFile     = "proxy.txt"
	DefaultLogLevel       = "info"
)

// Default 返回内置的默认配置，不需要任何配置文件即可运行。
func Default() *types.Config {
	return &types.Config{
		ScraperConf: types.ScraperConf{
			URL:            DefaultURL,
			UserAgent:      DefaultUserAgent,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		OutputConf: types.OutputConf{File: DefaultOutputFile},
		LogConf:    types.LogConf{Level: DefaultLogLevel},
	}
}

// LoadIni 在默认配置之上加载 ini 文件。文件不存在时直接使用默认值。
func LoadIni(cfg *types.Config, fileName string) error {
	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	return validate(cfg)
}

// Timeout 把配置中的秒数转换为 time.Duration。
func Timeout(cfg *types.Config) time.Duration {
	return time.Duration(cfg.ScraperConf.TimeoutSeconds) * time.Second
}

func validate(cfg *types.Config) error {
	if cfg.ScraperConf.URL == "" {
		return fmt.Errorf("scraper.url must not be empty")
	}
	if cfg.ScraperConf.TimeoutSeconds <= 0 {
		return fmt.Errorf("scraper.timeout_seconds must be positive, got %d", cfg.ScraperConf.TimeoutSeconds)
	}
	if cfg.OutputConf.File == "" {
		return fmt.Errorf("output.file must not be empty")
	}
	return nil
}
