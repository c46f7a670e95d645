package storage

import (
	"bufio"
	"fmt"
	"os"
	"proxylist/internal/shared/logger"
	"proxylist/proxylist/model"
	"strings"
	"time"
)

const (
	commentPrefix = "#"
	timeLayout    = "2006-01-02 15:04:05"
)

// Storage 接口定义了代理列表持久化的行为。
type Storage interface {
	Save(proxies []*model.ProxyRecord) error
}

// WriteError 表示打开或写入输出文件失败。
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileStorage 实现了 Storage 接口，把代理列表写成带时间戳头的纯文本文件。
type FileStorage struct {
	filePath string
	now      func() time.Time
}

// NewFileStorage 创建一个新的 FileStorage 实例。
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
		now:      time.Now,
	}
}

// WithClock 替换生成时间戳头所用的时钟。
func (fs *FileStorage) WithClock(now func() time.Time) *FileStorage {
	fs.now = now
	return fs
}

// Path 返回输出文件路径。
func (fs *FileStorage) Path() string {
	return fs.filePath
}

// Save 覆盖写入输出文件：时间戳行、总数行、空行，然后每行一个代理。
// 不做原子替换，失败时文件内容可能不完整。
func (fs *FileStorage) Save(proxies []*model.ProxyRecord) (err error) {
	l := logger.WithComponent("ProxyList/Storage")

	file, err := os.OpenFile(fs.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &WriteError{Path: fs.filePath, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: fs.filePath, Err: cerr}
		}
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s 代理列表更新时间: %s\n", commentPrefix, fs.now().Local().Format(timeLayout))
	fmt.Fprintf(w, "%s 总计: %d 个代理\n\n", commentPrefix, len(proxies))
	for _, p := range proxies {
		w.WriteString(p.String())
		w.WriteString("\n")
	}
	// bufio.Writer 记住第一个写错误，Flush 会返回它
	if err := w.Flush(); err != nil {
		return &WriteError{Path: fs.filePath, Err: err}
	}

	l.Info().Str("path", fs.filePath).Int("count", len(proxies)).Msg("代理列表已保存")
	return nil
}

// Load 读回 Save 写出的文件，跳过注释行、空行和无法解析的行。
func (fs *FileStorage) Load() ([]*model.ProxyRecord, error) {
	l := logger.WithComponent("ProxyList/Storage")

	file, err := os.Open(fs.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	proxies := make([]*model.ProxyRecord, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		p, err := model.ParseLine(line)
		if err != nil {
			l.Warn().Int("line", lineNum).Err(err).Msg("Skipping malformed line in proxy file.")
			continue
		}
		proxies = append(proxies, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	l.Debug().Int("count", len(proxies)).Str("path", fs.filePath).Msg("Loaded proxies from file.")
	return proxies, nil
}
