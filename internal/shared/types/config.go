package types

// ScraperConf 包含抓取目标相关的配置
type ScraperConf struct {
	URL            string `ini:"url"`
	UserAgent      string `ini:"user_agent"`
	TimeoutSeconds int    `ini:"timeout_seconds"`
}

// OutputConf 包含输出文件的配置
type OutputConf struct {
	File string `ini:"file"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是 proxylist 的统一配置结构体
type Config struct {
	ScraperConf `ini:"scraper"`
	OutputConf  `ini:"output"`
	LogConf     `ini:"log"`
}
