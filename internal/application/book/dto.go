package book

import (
	"math"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// =========================================
// 应用层DTO(数据传输对象)
// =========================================

// BookFields 新增/修改图书的请求字段
// 说明:价格以"元"为单位(与前端约定),进入领域层前转换为"分"
// 超过两位小数的价格无法无损转换,直接拒绝而不是四舍五入
type BookFields struct {
	Title  string
	Author string
	Price  float64
	Stock  int
}

// BookResponse 图书响应DTO
// JSON格式:{"id":1,"title":"Dune","author":"Herbert","price":9.99,"stock":5}
type BookResponse struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"` // 价格(元)
	Stock  int     `json:"stock"`
}

// toDetails 请求字段 → 领域字段
func (f BookFields) toDetails() (book.Details, error) {
	cents, err := yuanToCents(f.Price)
	if err != nil {
		return book.Details{}, err
	}
	return book.Details{
		Title:  f.Title,
		Author: f.Author,
		Price:  cents,
		Stock:  f.Stock,
	}, nil
}

// toBookResponse 领域实体 → 响应DTO
func toBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  centsToYuan(b.Price),
		Stock:  b.Stock,
	}
}

// toBookResponses 列表转换,空列表返回[]而不是nil(JSON序列化为[])
func toBookResponses(books []*book.Book) []BookResponse {
	list := make([]BookResponse, len(books))
	for i, b := range books {
		list[i] = toBookResponse(b)
	}
	return list
}

// centsTolerance 吸收二进制浮点误差(0.1+0.2 → 30.000000000000004分)
const centsTolerance = 1e-6

// yuanToCents 元 → 分(9.99 → 999)
// 学习要点:
// 1. 先检查区间再乘100,避免超大价格溢出int64
// 2. 小数超过两位(9.999)返回参数错误,保证新增后查询到的价格与提交的一致
func yuanToCents(yuan float64) (int64, error) {
	switch {
	case yuan > centsToYuan(book.MaxPrice):
		return 0, invalidPrice(book.MsgPriceTooHigh)
	case yuan < 0:
		return 0, invalidPrice(book.MsgPriceTooLow)
	}

	scaled := yuan * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > centsTolerance {
		return 0, invalidPrice(book.MsgPricePrecision)
	}
	return int64(cents), nil
}

func invalidPrice(msg string) error {
	return apperrors.Invalid(book.ErrInvalidBook.Message, map[string]string{"price": msg})
}

// centsToYuan 分 → 元
func centsToYuan(cents int64) float64 {
	return float64(cents) / 100
}
