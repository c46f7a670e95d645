package manager

import (
	"context"
	"proxylist/internal/shared/logger"
	"proxylist/proxylist/scraper"
	"proxylist/proxylist/storage"
)

// Manager 串联一次完整的 抓取 -> 解析 -> 写文件 流程。
type Manager struct {
	scraper scraper.Scraper
	storage storage.Storage
}

// NewManager 创建代理列表管理器。
func NewManager(s scraper.Scraper, st storage.Storage) *Manager {
	return &Manager{
		scraper: s,
		storage: st,
	}
}

// Run 执行一次抓取并保存结果，返回写入的代理数量。
// 抓取失败或没有代理时不写文件。
func (m *Manager) Run(ctx context.Context) (int, error) {
	l := logger.WithComponent("ProxyList/Manager")

	proxies, err := m.scraper.Scrape(ctx)
	if err != nil {
		l.Error().Err(err).Str("source", m.scraper.Name()).Msg("网络请求错误")
		return 0, err
	}

	if len(proxies) == 0 {
		l.Warn().Str("source", m.scraper.Name()).Msg("未能获取到代理数据")
		return 0, nil
	}

	if err := m.storage.Save(proxies); err != nil {
		l.Error().Err(err).Msg("保存文件错误")
		return 0, err
	}

	l.Info().Int("count", len(proxies)).Msg("代理列表抓取完成！")
	return len(proxies), nil
}
