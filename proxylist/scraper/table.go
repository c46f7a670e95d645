package scraper

import (
	"context"
	"errors"
	"net/url"
	"proxylist/internal/shared/logger"
	"proxylist/proxylist/fetcher"
	"proxylist/proxylist/model"
	"proxylist/proxylist/parser"
)

// PageFetcher 获取一个页面的 HTML 文本。
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// TableScraper 实现了 Scraper 接口，抓取单个页面并解析其中第一个表格。
type TableScraper struct {
	url     string
	fetcher PageFetcher
}

// NewTableScraper 创建一个新的 TableScraper 实例。
func NewTableScraper(pageURL string, f PageFetcher) *TableScraper {
	return &TableScraper{
		url:     pageURL,
		fetcher: f,
	}
}

var _ PageFetcher = (*fetcher.Fetcher)(nil)

// Name 返回抓取器的名称。
func (s *TableScraper) Name() string {
	if u, err := url.Parse(s.url); err == nil && u.Host != "" {
		return u.Host
	}
	return s.url
}

// Scrape 执行抓取操作。抓取失败时返回 *fetcher.FetchError。
func (s *TableScraper) Scrape(ctx context.Context) ([]*model.ProxyRecord, error) {
	l := logger.WithComponent("ProxyList/Scraper")
	l.Info().Str("source", s.Name()).Msg("Starting scrape...")

	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	proxies, err := parser.Parse(body)
	if errors.Is(err, parser.ErrNoTable) {
		l.Warn().Str("source", s.Name()).Msg(err.Error())
		return proxies, nil
	}
	if err != nil {
		return nil, err
	}

	l.Info().Int("count", len(proxies)).Str("source", s.Name()).Msgf("成功抓取到 %d 个代理", len(proxies))
	return proxies, nil
}
