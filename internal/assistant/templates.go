package assistant

// Quick templates are fixed lists triggered by literal phrase match on the
// normalized utterance. They bypass the parser entirely and are handed to
// the category/budget services after confirmation.

// TemplateKind selects the template variant.
type TemplateKind string

const (
	TemplateCategorySet TemplateKind = "category_set"
	TemplateBudgetSplit TemplateKind = "budget_split"
)

// BudgetSplit is a needs/wants/savings percentage split.
type BudgetSplit struct {
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
	Savings int `json:"savings"`
}

// Template is a confirmable quick-setup payload.
type Template struct {
	Kind       TemplateKind `json:"kind"`
	Title      string       `json:"title"`
	Categories []string     `json:"categories,omitempty"`
	Split      *BudgetSplit `json:"split,omitempty"`
}

// standardCategories is the fixed starter set created by the category-set
// template.
var standardCategories = []string{
	"Ăn uống",
	"Di chuyển",
	"Hóa đơn",
	"Mua sắm",
	"Giải trí",
	"Sức khỏe",
	"Giáo dục",
	"Khác",
}

// Trigger phrases in normalized form. đ survives normalization, so both
// spellings of "đặt" are listed.
var templateTriggers = map[string]TemplateKind{
	"tao bo danh muc chuan":  TemplateCategorySet,
	"bo danh muc chuan":      TemplateCategorySet,
	"đat ngan sach 50/30/20": TemplateBudgetSplit,
	"dat ngan sach 50/30/20": TemplateBudgetSplit,
	"ngan sach 50/30/20":     TemplateBudgetSplit,
	"quy tac 50/30/20":       TemplateBudgetSplit,
}

// matchTemplate returns the template for a literal trigger phrase, or nil.
func matchTemplate(normalized string) *Template {
	kind, ok := templateTriggers[normalized]
	if !ok {
		return nil
	}
	switch kind {
	case TemplateCategorySet:
		cats := make([]string, len(standardCategories))
		copy(cats, standardCategories)
		return &Template{
			Kind:       TemplateCategorySet,
			Title:      "Bộ danh mục chuẩn",
			Categories: cats,
		}
	case TemplateBudgetSplit:
		return &Template{
			Kind:  TemplateBudgetSplit,
			Title: "Ngân sách 50/30/20",
			Split: &BudgetSplit{Needs: 50, Wants: 30, Savings: 20},
		}
	default:
		return nil
	}
}
