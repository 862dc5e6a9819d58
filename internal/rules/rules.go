package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// FallbackCategory 无任何关键词命中时的兜底分类
	FallbackCategory = "general"
	// FallbackQueue 无队列映射时的兜底队列
	FallbackQueue = "General Support"
)

// CategoryRule 分类规则：分类名 + 触发关键词（子串匹配）
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// PriorityRule 优先级规则：优先级 + 触发关键词
type PriorityRule struct {
	Level    string   `yaml:"level"`
	Keywords []string `yaml:"keywords"`
}

// Table 规则表：进程启动时构造一次，之后只读
type Table struct {
	Categories     []CategoryRule      `yaml:"categories"` // 声明顺序即同分打平时的优先顺序
	Queues         map[string]string   `yaml:"queues"`
	Priorities     []PriorityRule      `yaml:"priorities"` // 按 high, medium, low 固定顺序匹配
	Actions        map[string][]string `yaml:"actions"`
	DefaultActions []string            `yaml:"defaultActions"`
}

// Default 内置规则表
func Default() *Table {
	return &Table{
		Categories: []CategoryRule{
			{Name: "payroll", Keywords: []string{"payroll", "salary", "wages", "tax withholding", "w2", "1099", "paycheck"}},
			{Name: "banking", Keywords: []string{"bank", "deposit", "withdrawal", "account", "routing", "transfer", "ach"}},
			{Name: "fraud", Keywords: []string{"fraud", "unauthorized", "suspicious", "dispute", "chargeback", "stolen"}},
			{Name: "technical", Keywords: []string{"app", "login", "password", "error", "bug", "crash", "sync"}},
			{Name: "billing", Keywords: []string{"bill", "charge", "fee", "payment", "invoice", "refund", "subscription"}},
			{Name: "compliance", Keywords: []string{"compliance", "audit", "regulation", "kyc", "aml", "verification"}},
		},
		Queues: map[string]string{
			"payroll":    "Payroll Support Team",
			"banking":    "Banking Operations",
			"fraud":      "Fraud Investigation",
			"technical":  "Technical Support",
			"billing":    "Billing Department",
			"compliance": "Compliance Team",
		},
		Priorities: []PriorityRule{
			{Level: "high", Keywords: []string{"urgent", "critical", "emergency", "fraud", "security", "breach"}},
			{Level: "medium", Keywords: []string{"issue", "problem", "help", "support"}},
			{Level: "low", Keywords: []string{"question", "inquiry", "information", "how to"}},
		},
		Actions: map[string][]string{
			"payroll": {
				"Verify employee information",
				"Check payroll processing status",
				"Review tax withholding settings",
				"Escalate to payroll specialist if needed",
			},
			"banking": {
				"Verify account details",
				"Check transaction history",
				"Review banking integration status",
				"Contact banking partner if required",
			},
			"fraud": {
				"Immediately flag account for review",
				"Document all suspicious activity",
				"Escalate to fraud investigation team",
				"Implement temporary security measures",
			},
			"technical": {
				"Gather system logs and error details",
				"Check for known issues",
				"Test reproduction steps",
				"Escalate to engineering if needed",
			},
			"billing": {
				"Review billing history",
				"Check payment processing status",
				"Verify subscription details",
				"Process refund if applicable",
			},
			"compliance": {
				"Review compliance requirements",
				"Gather necessary documentation",
				"Escalate to compliance team",
				"Ensure regulatory adherence",
			},
		},
		DefaultActions: []string{
			"Review case details thoroughly",
			"Gather additional information if needed",
			"Follow standard resolution procedures",
			"Escalate if resolution exceeds timeframe",
		},
	}
}

// LoadFile 从 YAML 文件加载规则表（运营侧可替换内置规则）
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取规则文件失败: %w", err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("解析规则文件失败: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("规则文件不合法: %w", err)
	}

	return &t, nil
}

// validate 校验规则表完整性
func (t *Table) validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("categories 不能为空")
	}
	for i, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("categories[%d] 缺少 name", i)
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("分类 %s 缺少关键词", c.Name)
		}
	}
	if len(t.Priorities) == 0 {
		return fmt.Errorf("priorities 不能为空")
	}
	for i, p := range t.Priorities {
		if p.Level == "" {
			return fmt.Errorf("priorities[%d] 缺少 level", i)
		}
	}
	return nil
}

// KeywordsFor 查询分类的触发关键词
func (t *Table) KeywordsFor(category string) []string {
	for _, c := range t.Categories {
		if c.Name == category {
			return c.Keywords
		}
	}
	return nil
}

// QueueFor 查询分类对应的队列，未映射时兜底到 General Support
func (t *Table) QueueFor(category string) string {
	if queue, ok := t.Queues[category]; ok {
		return queue
	}
	return FallbackQueue
}

// ActionsFor 查询分类的建议动作（返回副本，调用方可安全修改）
func (t *Table) ActionsFor(category string) []string {
	actions, ok := t.Actions[category]
	if !ok {
		actions = t.DefaultActions
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// CategoryNames 按声明顺序返回所有分类名
func (t *Table) CategoryNames() []string {
	names := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		names[i] = c.Name
	}
	return names
}

// QueueNames 按分类声明顺序返回所有队列名
func (t *Table) QueueNames() []string {
	queues := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		if queue, ok := t.Queues[c.Name]; ok {
			queues = append(queues, queue)
		}
	}
	return queues
}
