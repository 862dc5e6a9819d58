package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jenven8/intelligent-case-routing/internal/rules"
)

// Version 服务版本号
const Version = "1.0.0"

// InfoHandler 服务信息处理器（只读规则表，无业务逻辑）
type InfoHandler struct {
	table       *rules.Table
	serviceName string
}

// NewInfoHandler 创建服务信息处理器
func NewInfoHandler(table *rules.Table, serviceName string) *InfoHandler {
	return &InfoHandler{
		table:       table,
		serviceName: serviceName,
	}
}

// Root 服务首页
func (h *InfoHandler) Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Intelligent Case Routing API",
		"version": Version,
		"status":  "operational",
	})
}

// Health 健康检查
func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "UP",
		"service":   h.serviceName,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Categories 分类与队列映射
func (h *InfoHandler) Categories(c *gin.Context) {
	c.JSON(200, gin.H{
		"categories":    h.table.CategoryNames(),
		"queue_mapping": h.table.Queues,
	})
}

// ModelInfo 分类器元信息
func (h *InfoHandler) ModelInfo(c *gin.Context) {
	c.JSON(200, gin.H{
		"model_type":   "Rule-based Classifier",
		"categories":   h.table.CategoryNames(),
		"queues":       h.table.QueueNames(),
		"last_updated": "2024-08-27",
		"accuracy":     "85% (estimated)",
	})
}
