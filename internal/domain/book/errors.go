package book

import (
	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// 字段校验提示
const (
	MsgTitleRequired  = "Title is required"
	MsgAuthorRequired = "Author is required"
	MsgPriceTooLow    = "Price must be greater than 0"
	MsgPriceTooHigh   = "Price must not exceed 1000000"
	MsgPricePrecision = "Price must have at most 2 decimal places"
	MsgStockNegative  = "Stock cannot be negative"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidBook 图书字段不合法(字段信息由Validate补充)
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid book")
)

// invalidBook 构造带字段信息的参数错误
func invalidBook(fields map[string]string) error {
	return apperrors.Invalid(ErrInvalidBook.Message, fields)
}
