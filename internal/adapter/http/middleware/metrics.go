package middleware

import (
	"gestao_orcamentos/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts served requests by route template, not by raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
