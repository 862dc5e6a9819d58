package crm

import (
	"context"
	"errors"
)

// ErrCaseNotFound 工单不存在
var ErrCaseNotFound = errors.New("工单不存在")

// CaseRecord CRM 中的工单记录
type CaseRecord struct {
	CaseNumber  string `json:"case_number"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Origin      string `json:"origin"`
	Type        string `json:"type"`
	CreatedDate string `json:"created_date"`
}

// CaseSource 工单来源契约：按工单号查询记录，不存在时返回 ErrCaseNotFound
type CaseSource interface {
	Lookup(ctx context.Context, caseNumber string) (*CaseRecord, error)
}
