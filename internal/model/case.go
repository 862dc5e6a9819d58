package model

// CaseData 工单分析请求
type CaseData struct {
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`      // 默认 Medium
	CustomerType string `json:"customer_type"` // 默认 Individual
}

// CaseAnalysis 工单分析结果（构造后不再修改）
type CaseAnalysis struct {
	CaseID                  string   `json:"case_id"`
	PredictedCategory       string   `json:"predicted_category"`
	ConfidenceScore         float64  `json:"confidence_score"`
	RecommendedQueue        string   `json:"recommended_queue"`
	PriorityLevel           string   `json:"priority_level"`
	EstimatedResolutionTime string   `json:"estimated_resolution_time"`
	SuggestedActions        []string `json:"suggested_actions"`
}

// CaseNumberRequest 按工单号分析请求
type CaseNumberRequest struct {
	CaseNumber string `json:"case_number"`
}

// SourceCaseSummary 来源工单摘要
type SourceCaseSummary struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Origin      string `json:"origin"`
	Type        string `json:"type"`
	CreatedDate string `json:"created_date"`
}

// CaseNumberResponse 按工单号分析响应
type CaseNumberResponse struct {
	CaseNumber string            `json:"case_number"`
	SourceCase SourceCaseSummary `json:"source_case"`
	Analysis   CaseAnalysis      `json:"analysis"`
}
