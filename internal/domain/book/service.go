package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务负责业务规则:字段约束、修改时的整体覆盖、删除不存在图书的策略
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// ListBooks 查询全部图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// SearchBooks 按书名或作者搜索
	SearchBooks(ctx context.Context, query string) ([]*Book, error)

	// AddBook 新增图书
	// 业务规则:书名、作者非空,价格>=0.01,库存>=0
	AddBook(ctx context.Context, d Details) (*Book, error)

	// UpdateBook 修改图书
	// 业务规则:图书必须存在;书名、作者、价格、库存整体覆盖,ID不变
	UpdateBook(ctx context.Context, id uint, d Details) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则:图书不存在时默认静默成功,StrictDelete开启时返回ErrBookNotFound
	DeleteBook(ctx context.Context, id uint) error
}

// Options 领域服务选项
type Options struct {
	// StrictDelete 删除不存在的图书时是否返回ErrBookNotFound
	StrictDelete bool
}

// service 领域服务实现
type service struct {
	repo Repository
	opts Options
}

// NewService 创建图书领域服务
func NewService(repo Repository, opts Options) Service {
	return &service{repo: repo, opts: opts}
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// SearchBooks 按书名或作者搜索
func (s *service) SearchBooks(ctx context.Context, query string) ([]*Book, error) {
	return s.repo.Search(ctx, query)
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, d Details) (*Book, error) {
	// 1. 字段约束校验(HTTP层已校验,这里保证领域不变量)
	if fields := d.Validate(); fields != nil {
		return nil, invalidBook(fields)
	}

	// 2. 创建实体并持久化
	book := NewBook(d)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook 修改图书
// 说明:先查后写,没有版本号保护,并发修改同一本书时后写覆盖先写
func (s *service) UpdateBook(ctx context.Context, id uint, d Details) (*Book, error) {
	// 1. 字段约束校验
	if fields := d.Validate(); fields != nil {
		return nil, invalidBook(fields)
	}

	// 2. 查询图书(不存在时返回ErrBookNotFound,不做任何写入)
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 覆盖字段
	book.Overwrite(d)

	// 4. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrBookNotFound) && !s.opts.StrictDelete {
		return nil
	}
	return err
}
