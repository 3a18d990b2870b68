package zlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	mu     sync.RWMutex
)

func init() {
	// 未调用 Init 之前（如单元测试）使用 stdout 输出
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l
}

// Init 初始化日志：控制台 + 按大小切割的文件
func Init(logPath string, level string) {
	lvl := parseLevel(level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), lvl),
	}

	if strings.TrimSpace(logPath) != "" {
		_ = os.MkdirAll(filepath.Dir(logPath), 0o755)
		writer := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), lvl))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	mu.Lock()
	old := logger
	logger = l
	mu.Unlock()
	_ = old.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// L 返回底层 zap.Logger
func L() *zap.Logger {
	return get()
}

func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	get().Fatal(msg, fields...)
}

// Sync 刷新缓冲，退出前调用
func Sync() error {
	return get().Sync()
}
