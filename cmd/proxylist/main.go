package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"proxylist/internal/shared/config"
	"proxylist/internal/shared/logger"
	manager "proxylist/proxylist"
	"proxylist/proxylist/fetcher"
	"proxylist/proxylist/scraper"
	"proxylist/proxylist/storage"
)

func main() {
	iniPath := flag.String("config", "configs/proxylist.ini", "Path to optional config file")
	flag.Parse()

	// 1. 加载配置，文件不存在时使用内置默认值
	cfg := config.Default()
	if err := config.LoadIni(cfg, *iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", *iniPath, err)
		os.Exit(1)
	}

	// 2. 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 3. 抓取 -> 解析 -> 保存。失败只记录日志，进程正常结束。
	f := fetcher.New(cfg.ScraperConf.UserAgent, config.Timeout(cfg))
	m := manager.NewManager(
		scraper.NewTableScraper(cfg.ScraperConf.URL, f),
		storage.NewFileStorage(cfg.OutputConf.File),
	)
	m.Run(context.Background())
}
