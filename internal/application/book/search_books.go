package book

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// SearchBooksUseCase 图书搜索用例
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Query string // 匹配书名或作者,不区分大小写
}

// Execute 执行搜索用例
// 没有匹配时返回空列表,不返回错误
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) ([]BookResponse, error) {
	books, err := uc.bookService.SearchBooks(ctx, req.Query)
	metrics.RecordBookOperation(metrics.OpSearch, err)
	if err != nil {
		return nil, err
	}

	return toBookResponses(books), nil
}
