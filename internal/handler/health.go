package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health probes the two stores this service cannot run without: Postgres
// holds productos, tickets and pagos; Redis carries the price cache and the
// recibo job queues. Either one failing turns the response into a 503 so
// the load balancer drains the instance.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "down"
		}

		cache := "ok"
		if rdb.Ping(ctx).Err() != nil {
			cache = "down"
		}

		code := http.StatusOK
		estado := "ok"
		if postgres != "ok" || cache != "ok" {
			code = http.StatusServiceUnavailable
			estado = "degradado"
		}

		c.JSON(code, gin.H{
			"estado":   estado,
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
