package usecase

import (
	"context"
	"fmt"
	"time"

	"propfirm-assistant/internal/assistant"
)

// ListFirms returns firm summaries for listings and bot commands.
func (uc *implUseCase) ListFirms(ctx context.Context) ([]assistant.FirmSummary, error) {
	rows, err := uc.repo.ListFirms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list firms: %w", err)
	}

	firms := make([]assistant.FirmSummary, 0, len(rows))
	for _, row := range rows {
		firms = append(firms, assistant.FirmSummary{
			Name:        stringField(row.Fields, "name"),
			Slug:        stringField(row.Fields, "slug"),
			Description: stringField(row.Fields, "description"),
			UpdatedAt:   timeField(row.Fields, "updated_at"),
		})
	}
	return firms, nil
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func timeField(fields map[string]any, key string) time.Time {
	if v, ok := fields[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
