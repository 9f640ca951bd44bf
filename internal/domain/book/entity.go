package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题),HTTP层负责元↔分转换
// 2. ID由数据库自增生成,Create之后回填
// 3. 领域实体不依赖GORM tag
type Book struct {
	ID        uint
	Title     string // 书名
	Author    string // 作者
	Price     int64  // 价格(单位:分)
	Stock     int    // 库存数量
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Details 图书可编辑字段
// 新增和修改共用同一组字段,修改时整体覆盖
type Details struct {
	Title  string
	Author string
	Price  int64
	Stock  int
}

// 价格区间(分):0.01 ~ 1000000.00
const (
	MinPrice int64 = 1
	MaxPrice int64 = 100_000_000
)

// NewBook 创建新图书(工厂方法)
func NewBook(d Details) *Book {
	now := time.Now()
	return &Book{
		Title:     d.Title,
		Author:    d.Author,
		Price:     d.Price,
		Stock:     d.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Overwrite 用新字段覆盖书名、作者、价格、库存(ID保持不变)
func (b *Book) Overwrite(d Details) {
	b.Title = d.Title
	b.Author = d.Author
	b.Price = d.Price
	b.Stock = d.Stock
	b.UpdatedAt = time.Now()
}

// Validate 校验字段约束
// 返回key为JSON字段名的错误信息,全部合法时返回nil
func (d Details) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = MsgTitleRequired
	}
	if strings.TrimSpace(d.Author) == "" {
		fields["author"] = MsgAuthorRequired
	}
	switch {
	case d.Price < MinPrice:
		fields["price"] = MsgPriceTooLow
	case d.Price > MaxPrice:
		fields["price"] = MsgPriceTooHigh
	}
	if d.Stock < 0 {
		fields["stock"] = MsgStockNegative
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
