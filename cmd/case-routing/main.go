package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jenven8/intelligent-case-routing/internal/classifier"
	"github.com/jenven8/intelligent-case-routing/internal/config"
	"github.com/jenven8/intelligent-case-routing/internal/crm"
	"github.com/jenven8/intelligent-case-routing/internal/handler"
	"github.com/jenven8/intelligent-case-routing/internal/middleware"
	"github.com/jenven8/intelligent-case-routing/internal/rules"
	"github.com/jenven8/intelligent-case-routing/internal/service"
	"github.com/jenven8/intelligent-case-routing/pkg/logger"
	"github.com/jenven8/intelligent-case-routing/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/case-routing.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("case-routing 服务启动中...")

	// 规则表：启动时构造一次，之后只读
	table := rules.Default()
	if cfg.Rules.Path != "" {
		table, err = rules.LoadFile(cfg.Rules.Path)
		if err != nil {
			zapLogger.Fatal("加载规则表失败", zap.Error(err))
		}
		zapLogger.Info("已加载外部规则表",
			zap.String("path", cfg.Rules.Path),
			zap.Int("categories", len(table.Categories)))
	}

	// 工单来源（CRM）
	var caseSource crm.CaseSource
	switch cfg.CRM.Backend {
	case "mock":
		caseSource = crm.NewMockSource()
	case "http":
		caseSource = crm.NewHTTPSource(
			cfg.CRM.BaseURL,
			time.Duration(cfg.CRM.TimeoutSeconds)*time.Second,
			zapLogger)
	default:
		zapLogger.Fatal("未知的 CRM 后端", zap.String("backend", cfg.CRM.Backend))
	}

	// 可选：Redis 工单查询缓存
	if cfg.Redis.Host != "" {
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("连接 Redis 失败", zap.Error(err))
		}
		caseSource = crm.NewCachedSource(
			caseSource,
			redisClient,
			time.Duration(cfg.CRM.CacheTTLMinutes)*time.Minute,
			zapLogger)
		zapLogger.Info("已启用工单查询缓存",
			zap.Int("ttlMinutes", cfg.CRM.CacheTTLMinutes))
	}

	// 初始化服务
	clf := classifier.New(table)
	routingService := service.NewRoutingService(clf, caseSource, zapLogger)

	// 初始化处理器
	caseHandler := handler.NewCaseHandler(routingService, zapLogger)
	infoHandler := handler.NewInfoHandler(table, cfg.Server.Name)
	streamHandler := handler.NewStreamHandler(routingService, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/", infoHandler.Root)
	r.GET("/api/health", infoHandler.Health)

	// API 路由
	r.POST("/api/analyze-case", caseHandler.AnalyzeCase)
	r.POST("/api/analyze-case-number", caseHandler.AnalyzeCaseByNumber)
	r.GET("/api/categories", infoHandler.Categories)
	r.GET("/api/model-info", infoHandler.ModelInfo)

	// WebSocket 分流通道
	r.GET("/ws/triage", streamHandler.HandleTriage)

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("case-routing 服务启动成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("crmBackend", cfg.CRM.Backend))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
