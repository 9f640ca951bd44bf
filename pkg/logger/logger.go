package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志初始化参数
type Options struct {
	Level  string // debug | info | warn | error
	Format string // console | json
	Output string // stdout | stderr | /path/to/file
	Caller bool
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init 初始化全局日志
// 设计说明：
// 1. 使用zerolog输出结构化日志（零分配、JSON优先）
// 2. 开发环境使用console格式，生产环境使用json格式便于采集
// 3. 返回的io.Closer用于关闭文件输出（stdout/stderr时为空操作）
func Init(opts Options) (io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out, closer, err := openOutput(opts.Output)
	if err != nil {
		return nil, err
	}

	var w io.Writer = out
	if opts.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.Caller {
		ctx = ctx.Caller()
	}
	Set(ctx.Logger())

	return closer, nil
}

// Get 获取全局日志
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}

// Set 替换全局日志（测试中可注入写入buffer的logger）
func Set(l zerolog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}
