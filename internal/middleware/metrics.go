package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/metrics"
)

// Metrics registra a latência por rota (o template da rota, não a URL crua,
// para não explodir a cardinalidade).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		rota := c.FullPath()
		if rota == "" {
			rota = "sem_rota"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			rota,
			strconv.Itoa(c.Writer.Status()),
			time.Since(inicio),
		)
	}
}
