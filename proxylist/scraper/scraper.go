package scraper

import (
	"context"
	"proxylist/proxylist/model"
)

// Scraper 接口定义了从代理源抓取代理信息的行为。
type Scraper interface {
	// Scrape 执行一次抓取并按页面顺序返回代理记录。
	// 页面中没有数据表格不算错误，返回空切片。
	Scrape(ctx context.Context) ([]*model.ProxyRecord, error)

	// Name 返回抓取器的名称，用于日志记录。
	Name() string
}
