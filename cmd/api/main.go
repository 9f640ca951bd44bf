// @title        Online Bookstore API
// @version      1.0
// @description  在线书店后端：用户注册/登录、图书目录增删改查与搜索
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/onlinebookstore/internal/infrastructure/config"
	"github.com/xiebiao/onlinebookstore/pkg/logger"
)

// main 主程序入口
// 启动顺序：加载配置 → 初始化日志 → Wire组装依赖 → 启动HTTP服务 → 等待信号优雅退出
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "服务异常退出: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 初始化日志
	closer, err := logger.Init(cfg.Log.LoggerOptions())
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer closer.Close()
	log := logger.Get()

	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("db_driver", cfg.Database.Driver).
		Str("password_encoder", cfg.Auth.PasswordEncoder).
		Bool("strict_delete", cfg.Catalog.StrictDelete).
		Msg("配置加载成功")

	// 3. 依赖注入（Wire生成）
	engine, cleanup, err := InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	// 4. 启动服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 5. 等待退出信号
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// 6. 优雅退出：等待处理中的请求完成
	log.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("收到退出信号，正在关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}

	log.Info().Msg("服务已停止")
	return nil
}
