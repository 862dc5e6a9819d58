package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPSource 真实 CRM 后端客户端
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPSource 创建 CRM HTTP 客户端
func NewHTTPSource(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Lookup 调用 CRM 接口查询工单
func (s *HTTPSource) Lookup(ctx context.Context, caseNumber string) (*CaseRecord, error) {
	apiURL := fmt.Sprintf("%s/api/cases/%s", s.baseURL, url.PathEscape(caseNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 CRM 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCaseNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CRM 返回错误: %d, body: %s", resp.StatusCode, string(body))
	}

	var record CaseRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	s.logger.Debug("CRM 查询成功",
		zap.String("caseNumber", caseNumber),
		zap.String("status", record.Status))

	return &record, nil
}
