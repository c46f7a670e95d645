package storage

import (
	"errors"
	"os"
	"path/filepath"
	"proxylist/proxylist/model"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 9, 7, 3, 0, time.Local)
}

func sampleProxies() []*model.ProxyRecord {
	return []*model.ProxyRecord{
		{Protocol: "http", Address: "1.2.3.4", Port: "8080", Location: "北京"},
		{Protocol: "socks5", Address: "5.6.7.8", Port: "1080", Location: ""},
	}
}

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.txt")
	fs := NewFileStorage(path).WithClock(fixedClock)

	if err := fs.Save(sampleProxies()); err != nil {
		t.Fatalf("Save() returned an error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "# 代理列表更新时间: 2024-03-05 09:07:03\n" +
		"# 总计: 2 个代理\n" +
		"\n" +
		"http://1.2.3.4:8080 [北京]\n" +
		"socks5://5.6.7.8:1080 []\n"
	if string(data) != want {
		t.Errorf("Unexpected file content:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale line\n", 50)), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	fs := NewFileStorage(path).WithClock(fixedClock)
	if err := fs.Save(sampleProxies()[:1]); err != nil {
		t.Fatalf("Save() returned an error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Errorf("Old content survived overwrite: %q", string(data))
	}
	if !strings.Contains(string(data), "# 总计: 1 个代理\n") {
		t.Errorf("Expected count line for 1 proxy, got %q", string(data))
	}
}

func TestSave_InvalidPathIsWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "proxy.txt")
	err := NewFileStorage(path).Save(sampleProxies())

	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Expected *WriteError, got %T (%v)", err, err)
	}
	if we.Path != path {
		t.Errorf("Expected path '%s', got '%s'", path, we.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected underlying not-exist error, got %v", we.Err)
	}
}

func TestLoad_RoundTripsSavedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.txt")
	fs := NewFileStorage(path).WithClock(fixedClock)
	want := sampleProxies()
	if err := fs.Save(want); err != nil {
		t.Fatalf("Save() returned an error: %v", err)
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d proxies, got %d", len(want), len(got))
	}
	for i := range want {
		if *got[i] != *want[i] {
			t.Errorf("Proxy %d: expected %+v, got %+v", i, *want[i], *got[i])
		}
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.txt")
	content := "# header\n\nnot a proxy\nhttp://1.1.1.1:80 [x]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	got, err := NewFileStorage(path).Load()
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}
	if len(got) != 1 || got[0].String() != "http://1.1.1.1:80 [x]" {
		t.Errorf("Expected one valid proxy, got %v", got)
	}
}
