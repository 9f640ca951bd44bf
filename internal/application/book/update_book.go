package book

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// UpdateBookUseCase 修改图书用例
// 设计说明:
// 1. 书名、作者、价格、库存整体覆盖,ID保持不变
// 2. 图书不存在时返回ErrBookNotFound(HTTP 404)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改图书用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 修改图书请求DTO
type UpdateBookRequest struct {
	ID uint // 路径参数
	BookFields
}

// Execute 执行修改图书用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	var b *book.Book
	details, err := req.toDetails()
	if err == nil {
		b, err = uc.bookService.UpdateBook(ctx, req.ID, details)
	}
	metrics.RecordBookOperation(metrics.OpUpdate, err)
	if err != nil {
		return nil, err
	}

	resp := toBookResponse(b)
	return &resp, nil
}
