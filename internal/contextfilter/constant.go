package contextfilter

import "propfirm-assistant/internal/model"

// Log prefixes
const (
	LogPrefixBuild = "internal.contextfilter.Build"
)

// FAQ relevance filtering bounds: a non-general intent keeps keyword-matching
// FAQs, backfilled up to MinFAQResults so the answer is never FAQ-starved,
// and capped at MaxFAQResults.
const (
	MinFAQResults = 3
	MaxFAQResults = 8
)

// Row caps for the general-intent projection. A zero-confidence question
// (no domain keywords at all) gets the tighter minimal cap.
const (
	GeneralMaxRows = 6
	MinimalMaxRows = 3
)

// Token budget safeguard: if the filtered payload estimates below
// MinContextTokens, the filter rebuilds with the wider safe field sets.
const (
	MinContextTokens = 200
	CharsPerToken    = 4
	SafeMaxRows      = 10
)

// generalFields is the fixed "always useful" projection used by the general
// intent instead of per-intent required fields.
var generalFields = map[string][]string{
	model.TableFirms:          {"name", "highlights"},
	model.TableAccountPlans:   {"name", "account_size", "evaluation_fee"},
	model.TableFAQs:           {"question", "answer"},
	model.TableTradingRules:   {"rule_name", "description"},
	model.TablePayoutPolicies: {"min_payout", "profit_split", "payout_frequency"},
	model.TablePlatforms:      {"name", "platform_fee"},
}

// safeFields is the deliberately less aggressive projection used when the
// minimum-content safeguard trips. Wider lists, FAQs at full text.
var safeFields = map[string][]string{
	model.TableFirms:          {"name", "founded", "highlights", "website"},
	model.TableAccountPlans:   {"name", "account_size", "evaluation_fee", "activation_fee", "price_total", "profit_target", "max_contracts", "drawdown_type", "trailing_drawdown", "eod_drawdown"},
	model.TableFAQs:           {"question", "answer", "category"},
	model.TableTradingRules:   {"rule_name", "description", "applies_to", "penalty"},
	model.TablePayoutPolicies: {"min_payout", "payout_frequency", "profit_split", "first_payout_days", "payment_methods"},
	model.TablePlatforms:      {"name", "platform_fee", "data_feed", "notes"},
}
