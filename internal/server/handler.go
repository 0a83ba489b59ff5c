package server

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lbp0200/permgen/internal/logger"
	"github.com/lbp0200/permgen/internal/sorter"
)

// SortRequest 请求体
type SortRequest struct {
	ToSort [][]int64 `json:"to_sort"`
}

// SortResponse 响应体
type SortResponse struct {
	SortedArrays [][]int64 `json:"sorted_arrays"`
	TimeNs       int64     `json:"time_ns"`
}

type Handler struct {
	router *gin.Engine
}

func NewHandler() *Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), accessLog())

	h := &Handler{router: r}
	r.POST("/process-single", h.process(sorter.Sequential))
	r.POST("/process-concurrent", h.process(sorter.Concurrent))
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Serve 在 l 上处理请求，直到 l 关闭
func (h *Handler) Serve(l net.Listener) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.Serve(l)
}

func (h *Handler) process(sortFn func([][]int64) [][]int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SortRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid request format")
			return
		}

		start := time.Now()
		sorted := sortFn(req.ToSort)
		elapsed := time.Since(start)

		c.JSON(http.StatusOK, SortResponse{
			SortedArrays: sorted,
			TimeNs:       elapsed.Nanoseconds(),
		})
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
