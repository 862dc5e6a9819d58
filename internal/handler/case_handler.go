package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jenven8/intelligent-case-routing/internal/crm"
	"github.com/jenven8/intelligent-case-routing/internal/model"
	"github.com/jenven8/intelligent-case-routing/internal/service"
	"go.uber.org/zap"
)

// CaseHandler 工单分析处理器
type CaseHandler struct {
	routingService *service.RoutingService
	logger         *zap.Logger
}

// NewCaseHandler 创建工单分析处理器
func NewCaseHandler(routingService *service.RoutingService, logger *zap.Logger) *CaseHandler {
	return &CaseHandler{
		routingService: routingService,
		logger:         logger,
	}
}

// AnalyzeCase 直接提交工单分析接口
func (h *CaseHandler) AnalyzeCase(c *gin.Context) {
	var req model.CaseData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	h.logger.Info("收到工单分析请求", zap.String("subject", req.Subject))

	analysis := h.routingService.AnalyzeCase(req)
	c.JSON(200, analysis)
}

// AnalyzeCaseByNumber 按工单号分析接口
func (h *CaseHandler) AnalyzeCaseByNumber(c *gin.Context) {
	var req model.CaseNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	if req.CaseNumber == "" {
		c.JSON(400, gin.H{"error": "case_number 参数不能为空"})
		return
	}

	h.logger.Info("收到按工单号分析请求", zap.String("caseNumber", req.CaseNumber))

	result, err := h.routingService.AnalyzeCaseByNumber(c.Request.Context(), req.CaseNumber)
	if err != nil {
		if errors.Is(err, crm.ErrCaseNotFound) {
			c.JSON(404, gin.H{"error": "case not found", "case_number": req.CaseNumber})
			return
		}
		h.logger.Error("工单分析失败", zap.Error(err))
		c.JSON(500, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(200, result)
}
