package model

import (
	"fmt"
	"strings"
)

// UnknownLocation 是位置列缺失时使用的占位值。
const UnknownLocation = "未知"

// ProxyRecord 是从代理列表表格中解析出的一行数据。
// 记录没有唯一标识，它在输出中的位置就是它的身份。
type ProxyRecord struct {
	Protocol string // 协议, e.g. "http", "socks5"
	Address  string // IP 地址
	Port     string // 端口, 不校验是否为数字
	Location string // 已清理的位置信息, 可能为空
}

// Valid 报告协议、地址和端口在去除空白后是否都非空。
func (p *ProxyRecord) Valid() bool {
	return strings.TrimSpace(p.Protocol) != "" &&
		strings.TrimSpace(p.Address) != "" &&
		strings.TrimSpace(p.Port) != ""
}

// String 返回标准代理格式：协议://ip:port [地址位置]。
// 下游工具会重新解析这个格式，不要改动。
func (p *ProxyRecord) String() string {
	return fmt.Sprintf("%s://%s:%s [%s]", p.Protocol, p.Address, p.Port, p.Location)
}

// ParseLine 把 String 生成的一行文本解析回 ProxyRecord。
func ParseLine(line string) (*ProxyRecord, error) {
	line = strings.TrimSpace(line)

	protocol, rest, ok := strings.Cut(line, "://")
	if !ok {
		return nil, fmt.Errorf("missing scheme separator in %q", line)
	}

	hostPort, location, ok := strings.Cut(rest, " [")
	if !ok || !strings.HasSuffix(location, "]") {
		return nil, fmt.Errorf("missing bracketed location in %q", line)
	}
	location = strings.TrimSuffix(location, "]")

	// 地址可能是 IPv6 字面量，所以按最后一个冒号切分端口。
	idx := strings.LastIndex(hostPort, ":")
	if idx < 0 {
		return nil, fmt.Errorf("missing port in %q", line)
	}

	p := &ProxyRecord{
		Protocol: protocol,
		Address:  hostPort[:idx],
		Port:     hostPort[idx+1:],
		Location: location,
	}
	if !p.Valid() {
		return nil, fmt.Errorf("empty protocol, address or port in %q", line)
	}
	return p, nil
}
