package classifier

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jenven8/intelligent-case-routing/internal/model"
	"github.com/jenven8/intelligent-case-routing/internal/rules"
)

// fallbackConfidence 无关键词命中时的固定置信度
const fallbackConfidence = 0.5

// fallbackResolutionTime 未知优先级的兜底处理时长
const fallbackResolutionTime = "2-3 business days"

// resolutionTimes 各优先级的预计处理时长
var resolutionTimes = map[string]string{
	"high":   "2-4 hours",
	"medium": "1-2 business days",
	"low":    "3-5 business days",
}

// urgentAction 高优先级工单插入到建议动作首位
const urgentAction = "URGENT: Prioritize immediate attention"

// Classifier 规则分类器：启动时构造一次，之后只读，可并发使用
type Classifier struct {
	table     *rules.Table
	newCaseID func() string
}

// New 创建规则分类器
func New(table *rules.Table) *Classifier {
	return &Classifier{
		table:     table,
		newCaseID: NewCaseID,
	}
}

// NewCaseID 生成工单分析 ID：秒级时间戳 + uuid 后缀（避免同秒碰撞）
func NewCaseID() string {
	return fmt.Sprintf("CASE-%s-%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
}

// Classify 对工单文本做分类、路由和优先级判定
func (c *Classifier) Classify(input model.CaseData) model.CaseAnalysis {
	// 主题 + 描述拼接后统一小写，关键词按子串匹配
	text := strings.ToLower(input.Subject + " " + input.Description)

	// 分类打分：命中关键词数 / 关键词总数，零命中的分类不参与
	category := rules.FallbackCategory
	confidence := fallbackConfidence
	queue := rules.FallbackQueue
	bestScore := 0.0
	for _, rule := range c.table.Categories {
		hits := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(rule.Keywords))
		// 同分保留先声明的分类
		if score > bestScore {
			bestScore = score
			category = rule.Name
		}
	}
	if bestScore > 0 {
		confidence = round2(math.Min(bestScore*2, 1.0))
		queue = c.table.QueueFor(category)
	}

	// 优先级：关键词命中覆盖调用方给的优先级，按 high, medium, low 顺序首个命中生效
	priority := strings.ToLower(input.Priority)
	if priority == "" {
		priority = "medium"
	}
	for _, rule := range c.table.Priorities {
		if containsAny(text, rule.Keywords) {
			priority = rule.Level
			break
		}
	}

	resolutionTime, ok := resolutionTimes[priority]
	if !ok {
		resolutionTime = fallbackResolutionTime
	}

	actions := c.table.ActionsFor(category)
	if priority == "high" {
		actions = append([]string{urgentAction}, actions...)
	}

	return model.CaseAnalysis{
		CaseID:                  c.newCaseID(),
		PredictedCategory:       category,
		ConfidenceScore:         confidence,
		RecommendedQueue:        queue,
		PriorityLevel:           title(priority),
		EstimatedResolutionTime: resolutionTime,
		SuggestedActions:        actions,
	}
}

// containsAny 文本是否包含任一关键词
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// title 每个单词首字母大写（展示用，如 "medium" -> "Medium"）
// 非字母字符视为单词边界，如 "very-high" -> "Very-High"
func title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			upper = true
		} else if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
