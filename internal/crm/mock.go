package crm

import (
	"context"
	"fmt"
	"time"
)

// MockSource 模拟 CRM 后端：固定样例数据 + 未知工单号合成记录（永不返回 NotFound）
type MockSource struct {
	cases map[string]CaseRecord
}

// NewMockSource 创建模拟 CRM 后端
func NewMockSource() *MockSource {
	// 模拟 CRM 查询结果
	return &MockSource{
		cases: map[string]CaseRecord{
			"00001234": {
				CaseNumber:  "00001234",
				Subject:     "Payroll discrepancy in latest run",
				Description: "Employee paycheck is missing overtime wages and the W2 totals look wrong",
				Priority:    "High",
				Status:      "Open",
				Origin:      "Email",
				Type:        "Payroll Issue",
				CreatedDate: "2024-08-20",
			},
			"00001235": {
				CaseNumber:  "00001235",
				Subject:     "ACH transfer stuck in pending",
				Description: "Customer initiated a bank transfer three days ago and the deposit never arrived",
				Priority:    "Medium",
				Status:      "In Progress",
				Origin:      "Phone",
				Type:        "Banking Issue",
				CreatedDate: "2024-08-21",
			},
			"00002001": {
				CaseNumber:  "00002001",
				Subject:     "Unauthorized charge dispute",
				Description: "Cardholder reports a suspicious charge and suspects the card was stolen",
				Priority:    "High",
				Status:      "Open",
				Origin:      "Web",
				Type:        "Dispute",
				CreatedDate: "2024-08-22",
			},
			"00003456": {
				CaseNumber:  "00003456",
				Subject:     "Mobile app crashes on login",
				Description: "App shows an error after password entry and data sync never completes",
				Priority:    "Medium",
				Status:      "Open",
				Origin:      "Web",
				Type:        "Technical Issue",
				CreatedDate: "2024-08-23",
			},
		},
	}
}

// Lookup 查询工单，未知工单号返回合成记录（嵌入工单号）
func (s *MockSource) Lookup(_ context.Context, caseNumber string) (*CaseRecord, error) {
	if record, ok := s.cases[caseNumber]; ok {
		return &record, nil
	}

	// 合成记录，保证字段可被下游分类
	record := CaseRecord{
		CaseNumber:  caseNumber,
		Subject:     fmt.Sprintf("Case %s - General support request", caseNumber),
		Description: fmt.Sprintf("No matching record for case %s, customer requested assistance", caseNumber),
		Priority:    "Medium",
		Status:      "Open",
		Origin:      "Web",
		Type:        "Support Request",
		CreatedDate: time.Now().Format("2006-01-02"),
	}
	return &record, nil
}
