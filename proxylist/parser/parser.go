package parser

import (
	"errors"
	"fmt"
	"proxylist/proxylist/model"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoTable 表示页面中没有 <table> 元素。这不是致命错误，结果为空。
var ErrNoTable = errors.New("未找到代理数据表格")

// minCells 是一行被视为代理数据所需的最少列数：协议、IP、端口、位置。
const minCells = 4

// 位置列中需要去掉的按钮文字，按顺序删除。
var locationNoise = []string{"复制", "已复制", "已"}

// Parse 解析页面中第一个表格，跳过表头行，按行序返回代理记录。
// 列数不足或必填列为空的行会被静默跳过。
func Parse(htmlText string) ([]*model.ProxyRecord, error) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return []*model.ProxyRecord{}, ErrNoTable
	}

	proxies := make([]*model.ProxyRecord, 0)
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // 表头
		}
		if p := parseRow(row.Find("td")); p != nil {
			proxies = append(proxies, p)
		}
	})
	return proxies, nil
}

func parseRow(cells *goquery.Selection) *model.ProxyRecord {
	if cells.Length() < minCells {
		return nil
	}

	p := &model.ProxyRecord{
		Protocol: cellText(cells, 0, ""),
		Address:  cellText(cells, 1, ""),
		Port:     cellText(cells, 2, ""),
		Location: CleanLocation(cellText(cells, 3, model.UnknownLocation)),
	}
	if !p.Valid() {
		return nil
	}
	return p
}

func cellText(cells *goquery.Selection, idx int, fallback string) string {
	if idx >= cells.Length() {
		return fallback
	}
	return strings.TrimSpace(cells.Eq(idx).Text())
}

// CleanLocation 删除位置信息里的"复制"/"已复制"/"已"字样，并把连续空白压缩为单个空格。
// 删除会重复到结果不再变化，因此 CleanLocation(CleanLocation(s)) == CleanLocation(s)。
func CleanLocation(s string) string {
	for {
		prev := s
		for _, noise := range locationNoise {
			s = strings.ReplaceAll(s, noise, "")
		}
		if s == prev {
			break
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
