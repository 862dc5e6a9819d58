package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jenven8/intelligent-case-routing/internal/classifier"
	"github.com/jenven8/intelligent-case-routing/internal/crm"
	"github.com/jenven8/intelligent-case-routing/internal/model"
	"go.uber.org/zap"
)

// businessCaseTypes 映射为企业客户的工单类型
var businessCaseTypes = map[string]bool{
	"Payroll Issue": true,
	"Banking Issue": true,
}

// RoutingService 工单分析与路由服务
type RoutingService struct {
	classifier *classifier.Classifier
	caseSource crm.CaseSource
	logger     *zap.Logger
}

// NewRoutingService 创建工单分析与路由服务
func NewRoutingService(clf *classifier.Classifier, caseSource crm.CaseSource, logger *zap.Logger) *RoutingService {
	return &RoutingService{
		classifier: clf,
		caseSource: caseSource,
		logger:     logger,
	}
}

// AnalyzeCase 分析用户直接提交的工单
func (s *RoutingService) AnalyzeCase(input model.CaseData) *model.CaseAnalysis {
	// 补默认值
	if input.Priority == "" {
		input.Priority = "Medium"
	}
	if input.CustomerType == "" {
		input.CustomerType = "Individual"
	}

	s.logger.Info("开始分析工单",
		zap.String("subject", input.Subject),
		zap.String("priorityHint", input.Priority),
		zap.String("customerType", input.CustomerType))

	analysis := s.classifier.Classify(input)

	s.logger.Info("工单分析完成",
		zap.String("caseId", analysis.CaseID),
		zap.String("category", analysis.PredictedCategory),
		zap.Float64("confidence", analysis.ConfidenceScore),
		zap.String("queue", analysis.RecommendedQueue),
		zap.String("priority", analysis.PriorityLevel))

	return &analysis
}

// AnalyzeCaseByNumber 按工单号从 CRM 查询后分析
func (s *RoutingService) AnalyzeCaseByNumber(ctx context.Context, caseNumber string) (*model.CaseNumberResponse, error) {
	s.logger.Info("按工单号查询 CRM", zap.String("caseNumber", caseNumber))

	record, err := s.caseSource.Lookup(ctx, caseNumber)
	if err != nil {
		if errors.Is(err, crm.ErrCaseNotFound) {
			s.logger.Warn("CRM 中不存在该工单", zap.String("caseNumber", caseNumber))
			return nil, err
		}
		return nil, fmt.Errorf("查询 CRM 失败: %w", err)
	}

	// 工单类型映射客户类型
	customerType := "Individual"
	if businessCaseTypes[record.Type] {
		customerType = "Business"
	}

	input := model.CaseData{
		Subject:      record.Subject,
		Description:  record.Description,
		Priority:     record.Priority,
		CustomerType: customerType,
	}

	analysis := s.AnalyzeCase(input)

	return &model.CaseNumberResponse{
		CaseNumber: caseNumber,
		SourceCase: model.SourceCaseSummary{
			ID:          record.CaseNumber,
			Status:      record.Status,
			Origin:      record.Origin,
			Type:        record.Type,
			CreatedDate: record.CreatedDate,
		},
		Analysis: *analysis,
	}, nil
}
