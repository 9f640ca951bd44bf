package book

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例
// 删除不存在的图书是否报错由领域服务的StrictDelete选项决定
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行删除图书用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.bookService.DeleteBook(ctx, id)
	metrics.RecordBookOperation(metrics.OpDelete, err)
	return err
}
