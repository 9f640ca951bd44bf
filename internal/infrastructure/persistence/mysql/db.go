package mysql

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
	"github.com/xiebiao/onlinebookstore/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，生产环境使用MySQL，本地/演示可切换为纯Go实现的SQLite
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
// 返回的cleanup用于关闭底层连接池
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	// 1. 选择驱动
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Get().Info().Str("driver", cfg.Database.Driver).Msg("数据库连接成功")

	// 6. 自动迁移表结构
	if err := AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("关闭数据库连接失败")
		}
	}
	return db, cleanup, nil
}

// openDialector 根据配置选择GORM驱动
func openDialector(d config.DatabaseConfig) (gorm.Dialector, error) {
	switch d.Driver {
	case "mysql":
		return mysql.Open(d.DSN()), nil
	case "sqlite":
		return sqlite.Open(d.Path), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", d.Driver)
	}
}

// AutoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. Email只建普通索引，不加唯一约束（允许重复注册）
// 2. domain/user/entity.go是领域实体，Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:50;comment:用户名"`
	Email     string    `gorm:"index;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 书名、作者建立索引,服务于搜索
// 3. DeletedAt开启软删除,删除后的记录不再出现在任何查询中
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"index;size:200;not null;comment:书名"`
	Author    string         `gorm:"index;size:100;not null;comment:作者"`
	Price     int64          `gorm:"not null;comment:价格(分)"`
	Stock     int            `gorm:"not null;default:0;comment:库存数量"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
