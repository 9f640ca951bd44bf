package book

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 返回全部图书,按ID升序
// 2. 不分页(目录规模很小)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookResponse, error) {
	books, err := uc.bookService.ListBooks(ctx)
	metrics.RecordBookOperation(metrics.OpList, err)
	if err != nil {
		return nil, err
	}

	return toBookResponses(books), nil
}
