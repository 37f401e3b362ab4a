package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.HandleHealth)

	group := r.Group("/api")
	group.POST("/title-case", handler.HandleTitleCase)
	group.POST("/keyword-density", handler.HandleKeywordDensity)
	group.POST("/blog-outline", handler.HandleBlogOutline)
	group.POST("/meta-description", handler.HandleMetaDescription)
}
