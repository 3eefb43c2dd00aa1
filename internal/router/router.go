package router

import (
	"huffcodec/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		artifacts := v1.Group("/artifacts")
		{
			artifacts.POST("", d.CodecHandler.Encode)
			artifacts.GET("", d.CodecHandler.List)
			artifacts.GET("/:id", d.CodecHandler.GetByID)
			artifacts.GET("/:id/blob", d.CodecHandler.GetBlob)
			artifacts.GET("/:id/text", d.CodecHandler.GetText)
		}
		v1.POST("/decode", d.CodecHandler.Decode)
	}
}
