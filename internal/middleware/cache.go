package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// WithResponseMeta gives every request a meta map that handlers can add to.
// processing_time_ms is filled in after the handler unless it set one itself.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(responseMetaKey, gin.H{})
		c.Next()
		SetMetaDefault(c, "processing_time_ms", time.Since(start).Milliseconds())
	}
}

// SetMeta stores one metadata value for the current response.
func SetMeta(c *gin.Context, key string, value any) {
	if meta := metaOf(c, true); meta != nil {
		meta[key] = value
	}
}

// SetMetaDefault stores value only when key is not set yet.
func SetMetaDefault(c *gin.Context, key string, value any) {
	meta := metaOf(c, true)
	if meta == nil {
		return
	}
	if _, exists := meta[key]; !exists {
		meta[key] = value
	}
}

// SetCacheHit records whether the response body came from the cache.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, "cache_hit", hit)
}

// ExtractMeta returns the metadata collected so far, or nil outside WithResponseMeta.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	return metaOf(c, false)
}

func metaOf(c *gin.Context, create bool) gin.H {
	if c == nil {
		return nil
	}
	if value, exists := c.Get(responseMetaKey); exists {
		if meta, ok := value.(gin.H); ok {
			return meta
		}
	}
	if !create {
		return nil
	}
	meta := gin.H{}
	c.Set(responseMetaKey, meta)
	return meta
}
