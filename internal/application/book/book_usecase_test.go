package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// mockBookService Mock领域服务
type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) ListBooks(ctx context.Context) ([]*book.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]*book.Book)
	return books, args.Error(1)
}

func (m *mockBookService) SearchBooks(ctx context.Context, query string) ([]*book.Book, error) {
	args := m.Called(ctx, query)
	books, _ := args.Get(0).([]*book.Book)
	return books, args.Error(1)
}

func (m *mockBookService) AddBook(ctx context.Context, d book.Details) (*book.Book, error) {
	args := m.Called(ctx, d)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) UpdateBook(ctx context.Context, id uint, d book.Details) (*book.Book, error) {
	args := m.Called(ctx, id, d)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) DeleteBook(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestAddBookUseCase_ConvertsPriceToCents(t *testing.T) {
	svc := new(mockBookService)
	uc := NewAddBookUseCase(svc)
	ctx := context.Background()

	want := book.Details{Title: "Dune", Author: "Herbert", Price: 999, Stock: 5}
	svc.On("AddBook", ctx, want).
		Return(&book.Book{ID: 1, Title: "Dune", Author: "Herbert", Price: 999, Stock: 5}, nil)

	resp, err := uc.Execute(ctx, AddBookRequest{BookFields{Title: "Dune", Author: "Herbert", Price: 9.99, Stock: 5}})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, 9.99, resp.Price)
	svc.AssertExpectations(t)
}

func TestListBooksUseCase_EmptyIsNotNil(t *testing.T) {
	svc := new(mockBookService)
	uc := NewListBooksUseCase(svc)
	ctx := context.Background()

	svc.On("ListBooks", ctx).Return([]*book.Book{}, nil)

	list, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSearchBooksUseCase(t *testing.T) {
	svc := new(mockBookService)
	uc := NewSearchBooksUseCase(svc)
	ctx := context.Background()

	svc.On("SearchBooks", ctx, "herbert").
		Return([]*book.Book{{ID: 3, Title: "Dune", Author: "Herbert", Price: 1050, Stock: 1}}, nil)

	list, err := uc.Execute(ctx, SearchBooksRequest{Query: "herbert"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 10.5, list[0].Price)
}

func TestUpdateBookUseCase_NotFound(t *testing.T) {
	svc := new(mockBookService)
	uc := NewUpdateBookUseCase(svc)
	ctx := context.Background()

	svc.On("UpdateBook", ctx, uint(9), mock.Anything).Return(nil, book.ErrBookNotFound)

	resp, err := uc.Execute(ctx, UpdateBookRequest{ID: 9, BookFields: BookFields{Title: "A", Author: "B", Price: 1, Stock: 1}})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestDeleteBookUseCase(t *testing.T) {
	svc := new(mockBookService)
	uc := NewDeleteBookUseCase(svc)
	ctx := context.Background()

	svc.On("DeleteBook", ctx, uint(4)).Return(nil)

	assert.NoError(t, uc.Execute(ctx, 4))
	svc.AssertExpectations(t)
}

func TestPriceConversion(t *testing.T) {
	tests := []struct {
		yuan  float64
		cents int64
	}{
		{0.01, 1},
		{9.99, 999},
		{19.9, 1990},
		{0.1 + 0.2, 30},
		{100, 10000},
		{1000000, book.MaxPrice},
	}

	for _, tt := range tests {
		cents, err := yuanToCents(tt.yuan)
		require.NoError(t, err)
		assert.Equal(t, tt.cents, cents)
	}
	assert.Equal(t, 9.99, centsToYuan(999))
}

func TestPriceConversion_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yuan float64
		msg  string
	}{
		{"三位小数", 9.999, book.MsgPricePrecision},
		{"不足一分", 0.014, book.MsgPricePrecision},
		{"超过上限", 1e17, book.MsgPriceTooHigh},
		{"超大负数", -1e19, book.MsgPriceTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yuanToCents(tt.yuan)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
			assert.Equal(t, tt.msg, appErr.Fields["price"])
		})
	}
}

func TestAddBookUseCase_RejectsUnrepresentablePrice(t *testing.T) {
	svc := new(mockBookService)
	uc := NewAddBookUseCase(svc)

	_, err := uc.Execute(context.Background(), AddBookRequest{BookFields{Title: "Dune", Author: "Herbert", Price: 9.999, Stock: 5}})

	require.Error(t, err)
	assert.Equal(t, book.MsgPricePrecision, apperrors.GetAppError(err).Fields["price"])
	svc.AssertNotCalled(t, "AddBook", mock.Anything, mock.Anything)
}

func TestUpdateBookUseCase_RejectsUnrepresentablePrice(t *testing.T) {
	svc := new(mockBookService)
	uc := NewUpdateBookUseCase(svc)

	_, err := uc.Execute(context.Background(), UpdateBookRequest{ID: 1, BookFields: BookFields{Title: "A", Author: "B", Price: 1e17, Stock: 1}})

	require.Error(t, err)
	assert.Equal(t, book.MsgPriceTooHigh, apperrors.GetAppError(err).Fields["price"])
	svc.AssertNotCalled(t, "UpdateBook", mock.Anything, mock.Anything, mock.Anything)
}
