package contextfilter

import (
	"encoding/json"

	"propfirm-assistant/internal/model"
)

// EstimateTokens approximates LLM token cost at 4 characters per token.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + CharsPerToken - 1) / CharsPerToken
}

// Serialize renders filtered data as the JSON payload sent inside the LLM
// prompt body.
func (d Data) Serialize() string {
	plain := make(map[string][]map[string]any, len(d))
	for table, rows := range d {
		out := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			out = append(out, row.Fields)
		}
		plain[table] = out
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return ""
	}
	return string(raw)
}

// Tokens estimates the serialized token cost of the filtered data.
func (d Data) Tokens() int {
	return EstimateTokens(d.Serialize())
}

func rawTokens(rows []model.Row) int {
	plain := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		plain = append(plain, row.Fields)
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return 0
	}
	return EstimateTokens(string(raw))
}
