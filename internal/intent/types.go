package intent

// Type represents a user question's intent category.
type Type string

const (
	TypePricing    Type = "pricing"
	TypePlans      Type = "plans"
	TypePayout     Type = "payout"
	TypeDrawdown   Type = "drawdown"
	TypeRules      Type = "rules"
	TypePlatforms  Type = "platforms"
	TypeComparison Type = "comparison"
	TypeGeneral    Type = "general"
)

// Profile describes one intent category: the keywords that trigger it, the
// database fields relevant to it, and the label used in the LLM prompt header.
type Profile struct {
	Type           Type
	Keywords       []string
	RequiredFields map[string][]string
	ContextLabel   string
}

// Result is the outcome of classifying a single question.
type Result struct {
	Type       Type
	Confidence float64
}
