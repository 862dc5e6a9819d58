package model

// TriageRequest 实时分流通道请求
type TriageRequest struct {
	Type      string   `json:"type"` // CASE, HEARTBEAT
	RequestID string   `json:"requestId,omitempty"`
	Case      CaseData `json:"case"`
}

// TriageResponse 实时分流通道响应
type TriageResponse struct {
	Type      string        `json:"type"` // ANALYSIS, HEARTBEAT, ERROR
	RequestID string        `json:"requestId,omitempty"`
	Analysis  *CaseAnalysis `json:"analysis,omitempty"`
	Message   string        `json:"message,omitempty"`
}
