package model

// Logical table names returned by the firm repository.
const (
	TableFirms          = "firms"
	TableAccountPlans   = "account_plans"
	TableFAQs           = "faqs"
	TableTradingRules   = "trading_rules"
	TablePayoutPolicies = "payout_policies"
	TablePlatforms      = "platforms"
)

// Row is a single record fetched from the firm database, tagged with the
// logical table it came from. The tag is set by the repository layer so
// downstream consumers never have to guess a row's shape.
type Row struct {
	Table  string
	Fields map[string]any
}

// ID returns the row's id field if present.
func (r Row) ID() (any, bool) {
	id, ok := r.Fields["id"]
	return id, ok
}

// Has reports whether the row carries the named field.
func (r Row) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}
