package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jenven8/intelligent-case-routing/internal/model"
	"github.com/jenven8/intelligent-case-routing/internal/service"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境应该检查 Origin 白名单
		return true
	},
}

// StreamHandler 实时分流通道处理器
type StreamHandler struct {
	routingService *service.RoutingService
	logger         *zap.Logger
}

// NewStreamHandler 创建实时分流通道处理器
func NewStreamHandler(routingService *service.RoutingService, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{
		routingService: routingService,
		logger:         logger,
	}
}

// HandleTriage 分流通道入口：客户端发送工单，服务端逐条返回分析结果
func (h *StreamHandler) HandleTriage(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	h.logger.Info("分流通道建立",
		zap.String("sessionId", sessionID),
		zap.String("clientIp", c.ClientIP()))

	// 消息循环（单连接单读单写，无需加锁）
	for {
		var req model.TriageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("分流通道读取错误",
					zap.String("sessionId", sessionID),
					zap.Error(err))
			}
			break
		}

		h.handleMessage(conn, sessionID, &req)
	}

	h.logger.Info("分流通道断开", zap.String("sessionId", sessionID))
}

// handleMessage 处理单条分流消息
func (h *StreamHandler) handleMessage(conn *websocket.Conn, sessionID string, req *model.TriageRequest) {
	switch req.Type {
	case "CASE":
		analysis := h.routingService.AnalyzeCase(req.Case)
		response := model.TriageResponse{
			Type:      "ANALYSIS",
			RequestID: req.RequestID,
			Analysis:  analysis,
		}
		if err := conn.WriteJSON(response); err != nil {
			h.logger.Error("分析结果下发失败",
				zap.String("sessionId", sessionID),
				zap.Error(err))
		}

	case "HEARTBEAT":
		h.logger.Debug("收到心跳", zap.String("sessionId", sessionID))
		conn.WriteJSON(model.TriageResponse{Type: "HEARTBEAT", RequestID: req.RequestID})

	default:
		h.logger.Warn("未知消息类型",
			zap.String("sessionId", sessionID),
			zap.String("type", req.Type))
		conn.WriteJSON(model.TriageResponse{
			Type:      "ERROR",
			RequestID: req.RequestID,
			Message:   "unknown message type",
		})
	}
}
