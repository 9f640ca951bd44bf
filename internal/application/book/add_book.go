package book

import (
	"context"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	"github.com/xiebiao/onlinebookstore/pkg/metrics"
)

// AddBookUseCase 新增图书用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 此用例比较简单,只需调用领域服务即可
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 新增图书请求DTO
type AddBookRequest struct {
	BookFields
}

// Execute 执行新增图书用例
// 学习要点:
// 1. 应用层不直接操作Repository,通过领域服务间接操作
// 2. 字段约束由领域服务再校验一次(HTTP层校验可能被绕过)
// 3. HTTP响应体为空,这里仍返回新图书,便于测试和日志
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	var b *book.Book
	details, err := req.toDetails()
	if err == nil {
		b, err = uc.bookService.AddBook(ctx, details)
	}
	metrics.RecordBookOperation(metrics.OpAdd, err)
	if err != nil {
		return nil, err
	}

	resp := toBookResponse(b)
	return &resp, nil
}
