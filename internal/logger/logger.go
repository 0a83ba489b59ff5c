package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger 全局日志实例
	Logger zerolog.Logger
)

func init() {
	// 从环境变量读取日志配置
	levelStr := os.Getenv("PERMGEN_LOG_LEVEL")
	if levelStr == "" {
		levelStr = "warn" // 默认 WARNING 级别
	}
	zerolog.SetGlobalLevel(parseLevel(levelStr))

	Logger = zerolog.New(newOutput(os.Getenv("PERMGEN_LOG_FILE"))).With().Timestamp().Logger()
	log.Logger = Logger
}

// newOutput 选择日志输出：设置了文件则带轮转写文件，否则写 stderr
// stdout 留给确认信息
func newOutput(logFile string) io.Writer {
	if logFile != "" {
		return &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB
			MaxBackups: 7,
			MaxAge:     30, // 天
			Compress:   true,
		}
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05.000",
	}
}

// parseLevel 解析日志级别字符串
func parseLevel(levelStr string) zerolog.Level {
	levelStr = strings.ToUpper(strings.TrimSpace(levelStr))
	switch levelStr {
	case "DEBUG", "DBG":
		return zerolog.DebugLevel
	case "INFO", "INF":
		return zerolog.InfoLevel
	case "WARNING", "WARN":
		return zerolog.WarnLevel
	case "ERROR", "ERR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.WarnLevel
	}
}

// SetLevel 设置日志级别
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	Logger = Logger.Level(level)
	log.Logger = Logger
}

// SetLevelFromString 从字符串设置日志级别
func SetLevelFromString(levelStr string) {
	SetLevel(parseLevel(levelStr))
}

// GetLevelString 获取当前日志级别的字符串表示
func GetLevelString() string {
	return zerolog.GlobalLevel().String()
}

// WithRun 返回带 run_id 字段的子 logger
func WithRun(runID string) zerolog.Logger {
	return Logger.With().Str("run_id", runID).Logger()
}

// Debug 记录 DEBUG 级别日志
func Debug(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}

// Info 记录 INFO 级别日志
func Info(format string, args ...interface{}) {
	Logger.Info().Msgf(format, args...)
}

// Warning 记录 WARNING 级别日志
func Warning(format string, args ...interface{}) {
	Logger.Warn().Msgf(format, args...)
}

// Error 记录 ERROR 级别日志
func Error(format string, args ...interface{}) {
	Logger.Error().Msgf(format, args...)
}
