package contextfilter

import (
	"strings"

	"propfirm-assistant/internal/intent"
	"propfirm-assistant/internal/model"
)

// ByIntent projects the raw rows down to the fields the detected intent
// needs. Tables absent from the intent's required fields are dropped
// entirely; rows left with nothing beyond id are discarded.
func (f *Filter) ByIntent(rows []model.Row, res intent.Result) Data {
	if res.Type == intent.TypeGeneral {
		maxRows := GeneralMaxRows
		if res.Confidence == 0 {
			maxRows = MinimalMaxRows
		}
		return projectAll(rows, generalFields, maxRows)
	}

	profile := f.classifier.Profile(res.Type)
	grouped := groupByTable(rows)

	out := Data{}
	for table, tableRows := range grouped {
		fields, ok := profile.RequiredFields[table]
		if !ok {
			continue
		}
		var kept []model.Row
		if table == model.TableFAQs {
			kept = filterFAQs(tableRows, profile.Keywords)
		} else {
			kept = tableRows
		}
		projected := projectRows(kept, table, fields, 0)
		if len(projected) > 0 {
			out[table] = projected
		}
	}
	return out
}

// filterFAQs keeps FAQs whose question+answer text contains at least one
// intent keyword, backfilling with non-matching FAQs up to MinFAQResults so
// aggressive filtering never starves the response, capped at MaxFAQResults.
func filterFAQs(faqs []model.Row, keywords []string) []model.Row {
	var matched, rest []model.Row
	for _, row := range faqs {
		text := strings.ToLower(fieldString(row, "question") + " " + fieldString(row, "answer"))
		hit := false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, row)
		} else {
			rest = append(rest, row)
		}
	}

	for len(matched) < MinFAQResults && len(rest) > 0 {
		matched = append(matched, rest[0])
		rest = rest[1:]
	}
	if len(matched) > MaxFAQResults {
		matched = matched[:MaxFAQResults]
	}
	return matched
}

// projectAll applies a fixed field set per table with a per-table row cap.
func projectAll(rows []model.Row, fieldsByTable map[string][]string, maxRows int) Data {
	out := Data{}
	for table, tableRows := range groupByTable(rows) {
		fields, ok := fieldsByTable[table]
		if !ok {
			continue
		}
		projected := projectRows(tableRows, table, fields, maxRows)
		if len(projected) > 0 {
			out[table] = projected
		}
	}
	return out
}

// projectRows keeps id and the firm tag plus the listed fields per row; rows
// reduced to only id/firm carry no information and are dropped. maxRows of 0
// means unbounded. The firm tag is deliberate row metadata alongside id, not
// part of any intent's field selection: it keeps multi-firm contexts
// attributable in the prompt payload and never counts toward the keep
// decision.
func projectRows(rows []model.Row, table string, fields []string, maxRows int) []model.Row {
	out := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		projected := model.Row{Table: table, Fields: map[string]any{}}
		if id, ok := row.ID(); ok {
			projected.Fields["id"] = id
		}
		if firm, ok := row.Fields["firm"]; ok {
			projected.Fields["firm"] = firm
		}
		kept := 0
		for _, field := range fields {
			if v, ok := row.Fields[field]; ok {
				projected.Fields[field] = v
				kept++
			}
		}
		if kept == 0 {
			continue
		}
		out = append(out, projected)
		if maxRows > 0 && len(out) >= maxRows {
			break
		}
	}
	return out
}

// groupByTable buckets rows by their table tag, inferring a table for the
// odd untagged row by field presence.
func groupByTable(rows []model.Row) map[string][]model.Row {
	grouped := map[string][]model.Row{}
	for _, row := range rows {
		table := row.Table
		if table == "" {
			table = inferTable(row)
		}
		if table == tableUnknown {
			continue
		}
		grouped[table] = append(grouped[table], row)
	}
	return grouped
}

const tableUnknown = "unknown"

// inferTable is a compatibility fallback for rows that arrive without a
// table tag. First matching rule wins.
func inferTable(row model.Row) string {
	switch {
	case row.Has("evaluation_fee") || row.Has("account_size"):
		return model.TableAccountPlans
	case row.Has("question") && row.Has("answer"):
		return model.TableFAQs
	case row.Has("min_payout") || row.Has("profit_split"):
		return model.TablePayoutPolicies
	case row.Has("rule_name"):
		return model.TableTradingRules
	case row.Has("platform_fee") || row.Has("data_feed"):
		return model.TablePlatforms
	case row.Has("founded") || row.Has("highlights"):
		return model.TableFirms
	default:
		return tableUnknown
	}
}

func fieldString(row model.Row, field string) string {
	if v, ok := row.Fields[field]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
