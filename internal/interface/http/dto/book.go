package dto

import (
	"github.com/xiebiao/onlinebookstore/internal/domain/book"
)

// BookRequest HTTP新增/修改图书请求
// validator tag说明:
// - required: 必填字段
// - notblank: 不能只包含空白字符(在pkg/validator中注册)
// - min/max: 数值范围、长度校验
// - cents: 价格最多两位小数(在pkg/validator中注册)
type BookRequest struct {
	Title  string  `json:"title" binding:"required,notblank,max=200" example:"Dune"`
	Author string  `json:"author" binding:"required,notblank,max=100" example:"Frank Herbert"`
	Price  float64 `json:"price" binding:"required,min=0.01,max=1000000,cents" example:"9.99"` // 价格(元)
	Stock  int     `json:"stock" binding:"min=0" example:"5"`
}

// ValidationMessages 字段校验失败时的提示信息
func (BookRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"title":       book.MsgTitleRequired,
		"title.max":   "Title must be at most 200 characters",
		"author":      book.MsgAuthorRequired,
		"author.max":  "Author must be at most 100 characters",
		"price":       book.MsgPriceTooLow,
		"price.max":   book.MsgPriceTooHigh,
		"price.cents": book.MsgPricePrecision,
		"stock":       book.MsgStockNegative,
	}
}

// BookIDRequest 路径参数 /api/books/:id
type BookIDRequest struct {
	ID uint `uri:"id" binding:"required"`
}

// ValidationMessages 字段校验失败时的提示信息
func (BookIDRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"id": "Book id must be a positive integer",
	}
}

// BookResponse HTTP图书响应(仅用于API文档)
// 实际响应使用application/book.BookResponse,字段一致
type BookResponse struct {
	ID     uint    `json:"id" example:"1"`
	Title  string  `json:"title" example:"Dune"`
	Author string  `json:"author" example:"Frank Herbert"`
	Price  float64 `json:"price" example:"9.99"` // 价格(元)
	Stock  int     `json:"stock" example:"5"`
}
