package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/onlinebookstore/internal/domain/book"
	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

func seedBooks(t *testing.T, repo book.Repository, items ...book.Details) []*book.Book {
	t.Helper()
	books := make([]*book.Book, 0, len(items))
	for _, d := range items {
		b := book.NewBook(d)
		require.NoError(t, repo.Create(context.Background(), b))
		books = append(books, b)
	}
	return books
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	b := book.NewBook(book.Details{Title: "Go语言实战", Author: "William", Price: 5900, Stock: 3})
	require.NoError(t, repo.Create(ctx, b))
	assert.NotZero(t, b.ID)

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go语言实战", found.Title)
	assert.Equal(t, int64(5900), found.Price)
	assert.Equal(t, 3, found.Stock)
}

func TestBookRepository_FindByID_NotFound(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_FindAll_OrderedByID(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	seeded := seedBooks(t, repo,
		book.Details{Title: "A", Author: "X", Price: 100, Stock: 1},
		book.Details{Title: "B", Author: "Y", Price: 200, Stock: 0},
	)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, seeded[0].ID, all[0].ID)
	assert.Equal(t, seeded[1].ID, all[1].ID)
}

func TestBookRepository_Search(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	seedBooks(t, repo,
		book.Details{Title: "The Go Programming Language", Author: "Donovan", Price: 100, Stock: 1},
		book.Details{Title: "Clean Code", Author: "Robert Martin", Price: 100, Stock: 1},
		book.Details{Title: "100% Go", Author: "Anon", Price: 100, Stock: 1},
	)

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{"书名匹配", "Clean", []string{"Clean Code"}},
		{"作者匹配", "martin", []string{"Clean Code"}},
		{"不区分大小写", "GO", []string{"The Go Programming Language", "100% Go"}},
		{"百分号按字面匹配", "100%", []string{"100% Go"}},
		{"下划线按字面匹配", "_", nil},
		{"没有匹配", "Rust", nil},
		{"空关键词匹配全部", "", []string{"The Go Programming Language", "Clean Code", "100% Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.NotNil(t, result)

			titles := make([]string, 0, len(result))
			for _, b := range result {
				titles = append(titles, b.Title)
			}
			if tt.titles == nil {
				assert.Empty(t, titles)
			} else {
				assert.Equal(t, tt.titles, titles)
			}
		})
	}
}

func TestBookRepository_Update(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	b := seedBooks(t, repo, book.Details{Title: "Old", Author: "Someone", Price: 1000, Stock: 5})[0]

	b.Overwrite(book.Details{Title: "New", Author: "Other", Price: 1, Stock: 0})
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "Other", found.Author)
	assert.Equal(t, int64(1), found.Price)
	assert.Equal(t, 0, found.Stock)
}

func TestBookRepository_Delete(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	b := seedBooks(t, repo, book.Details{Title: "A", Author: "X", Price: 100, Stock: 1})[0]

	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// 再次删除：没有受影响的行
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)
}

func TestBookRepository_DatabaseFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDatabaseError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_CreateFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `books`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), book.NewBook(book.Details{Title: "A", Author: "X", Price: 100}))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDatabaseError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_DeleteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET `deleted_at`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, book.ErrBookNotFound))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDatabaseError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%50!%!_off%", containsPattern("50%_Off"))
	assert.Equal(t, "%a!!b%", containsPattern("a!b"))
	assert.Equal(t, "%%", containsPattern(""))
	assert.Equal(t, "%émile zola%", containsPattern("ÉMILE Zola"))
}

func TestBookRepository_Search_SQLiteFoldsASCIIOnly(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	seedBooks(t, repo, book.Details{Title: "Germinal", Author: "Émile Zola", Price: 100, Stock: 1})

	result, err := repo.Search(ctx, "ZOLA")
	require.NoError(t, err)
	assert.Len(t, result, 1)

	// 关键词被折叠为"émile",列值LOWER后仍是"Émile"
	result, err = repo.Search(ctx, "Émile")
	require.NoError(t, err)
	assert.Empty(t, result)
}
