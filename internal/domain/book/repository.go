package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// FindAll 查询全部图书(按ID升序)
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书
	// 如果不存在,返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Search 书名或作者包含keyword的图书(不区分大小写)
	// 没有匹配时返回空切片
	Search(ctx context.Context, keyword string) ([]*Book, error)

	// Create 创建图书,成功后回填ID
	Create(ctx context.Context, book *Book) error

	// Update 保存图书全部字段
	Update(ctx context.Context, book *Book) error

	// Delete 根据ID删除图书
	// 没有删除任何记录时返回ErrBookNotFound,是否对外报错由Service决定
	Delete(ctx context.Context, id uint) error
}
