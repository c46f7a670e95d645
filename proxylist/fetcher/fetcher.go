package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"proxylist/internal/shared/logger"
	"strings"
	"time"
)

// FetchError 表示一次页面抓取失败：网络错误、超时或非 2xx 状态码。
type FetchError struct {
	URL        string
	StatusCode int // 0 表示没有收到响应
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher 用固定的 User-Agent 和超时执行单次 GET 请求，不做重试。
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New 创建一个新的 Fetcher 实例。
func New(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch 请求 url 并把响应体作为 UTF-8 文本返回，忽略响应声明的编码。
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	l := logger.WithComponent("ProxyList/Fetcher")
	l.Info().Str("url", url).Msg("正在抓取代理列表")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 丢弃响应体以便连接复用
		io.Copy(io.Discard, resp.Body)
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %q", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	l.Debug().Int("status_code", resp.StatusCode).Int("bytes", len(body)).Msg("Page fetched.")
	return strings.ToValidUTF8(string(body), "\uFFFD"), nil
}
