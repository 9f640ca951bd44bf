// Package metrics 提供基于Prometheus的指标收集
//
// # 核心概念
//
// **1. Counter（计数器）**：只增不减的累计值
//   - 示例：HTTP请求总数、图书操作次数、登录次数
//   - 特点：只能调用Inc()递增
//
// **2. Gauge（仪表盘）**：可增可减的瞬时值
//   - 示例：正在处理的请求数
//
// **3. Histogram（直方图）**：观测值的分布
//   - 示例：HTTP请求耗时
//   - 特点：服务端可用histogram_quantile计算P50、P90、P99
//
// # 使用示例
//
//	// 1. 启动时注册到默认Registry
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
//
//	// 3. 在业务代码中记录指标
//	b, err := uc.bookService.AddBook(ctx, details)
//	metrics.RecordBookOperation(metrics.OpAdd, err)
//
// # 命名规范
//
//  1. Counter以`_total`结尾：`http_requests_total`
//  2. Histogram以单位结尾：`http_request_duration_seconds`
//  3. 避免高基数标签：path使用路由模板（/api/books/:id），不用实际URL
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// 图书操作类型（operation标签）
const (
	OpList   = "list"
	OpSearch = "search"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// 操作结果（result标签）
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
	ResultFailure  = "failure"
)

var (
	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/books/:id）、status（200/404）
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 业务指标

	// BookOperationsTotal 图书操作总数（Counter）
	// 标签：operation（list/search/add/update/delete）、result（success/invalid/not_found/error）
	BookOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_book_operations_total",
			Help: "图书操作总数",
		},
		[]string{"operation", "result"},
	)

	// LoginAttemptsTotal 登录次数（Counter）
	// 标签：result（success/failure）
	LoginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_login_attempts_total",
			Help: "登录次数",
		},
		[]string{"result"},
	)

	// UsersRegisteredTotal 注册用户总数（Counter）
	UsersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookstore_users_registered_total",
			Help: "注册用户总数",
		},
	)
)

var registerOnce sync.Once

// InitMetrics 注册所有指标到默认Registry
// 可以重复调用，只有第一次生效
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(collectors()...)
	})
}

// Register 注册所有指标到指定Registry（测试使用独立Registry）
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestsInProgress,
		BookOperationsTotal,
		LoginAttemptsTotal,
		UsersRegisteredTotal,
	}
}

// Handler 默认Registry的/metrics处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordBookOperation 按错误类型记录图书操作结果
func RecordBookOperation(operation string, err error) {
	BookOperationsTotal.WithLabelValues(operation, resultOf(err)).Inc()
}

// RecordLogin 记录登录结果
func RecordLogin(ok bool) {
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// resultOf 错误 → result标签
func resultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	switch apperrors.GetAppError(err).HTTPStatus() {
	case http.StatusBadRequest:
		return ResultInvalid
	case http.StatusNotFound:
		return ResultNotFound
	default:
		return ResultError
	}
}
