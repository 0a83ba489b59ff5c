package main

import (
	"flag"
	"net"
	"os"

	"github.com/lbp0200/permgen/internal/logger"
	"github.com/lbp0200/permgen/internal/server"
)

func main() {
	addr := flag.String("addr", ":"+defaultPort(), "listen addr")
	logLevel := flag.String("log-level", "", "log level: DEBUG, INFO, WARNING, ERROR (default: WARNING, or from PERMGEN_LOG_LEVEL env)")
	flag.Parse()

	if *logLevel != "" {
		logger.SetLevelFromString(*logLevel)
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("addr", *addr).Msg("Failed to listen")
	}
	// 启动信息使用 WARN 级别，默认配置下也能显示
	logger.Warning("sort server listening on %s", *addr)
	if err := server.NewHandler().Serve(ln); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Server failed")
	}
}

// defaultPort 读取 PORT 环境变量，未设置时为 8000
func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}
