package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"propfirm-assistant/internal/assistant/repository"
	"propfirm-assistant/internal/model"
)

// ErrFirmNotFound is returned when a firm slug filter matches nothing.
var ErrFirmNotFound = errors.New("firm not found")

func (r *implRepository) ListFirms(ctx context.Context) ([]model.Row, error) {
	var firms []firmModel
	if err := r.db.WithContext(ctx).Order("name").Find(&firms).Error; err != nil {
		return nil, fmt.Errorf("list firms: %w", err)
	}

	rows := make([]model.Row, 0, len(firms))
	for _, f := range firms {
		rows = append(rows, firmRow(f))
	}
	return rows, nil
}

func (r *implRepository) ContextRows(ctx context.Context, opt repository.ContextRowsOptions) ([]model.Row, error) {
	db := r.db.WithContext(ctx)

	var firms []firmModel
	firmQuery := db.Order("name")
	if opt.Firm != "" {
		firmQuery = firmQuery.Where("slug = ?", opt.Firm)
	}
	if err := firmQuery.Find(&firms).Error; err != nil {
		return nil, fmt.Errorf("load firms: %w", err)
	}
	if opt.Firm != "" && len(firms) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFirmNotFound, opt.Firm)
	}

	slugByID := make(map[uint]string, len(firms))
	firmIDs := make([]uint, 0, len(firms))
	for _, f := range firms {
		slugByID[f.ID] = f.Slug
		firmIDs = append(firmIDs, f.ID)
	}

	var rows []model.Row
	for _, f := range firms {
		rows = append(rows, firmRow(f))
	}

	scoped := func(tx *gorm.DB) *gorm.DB {
		if opt.Firm != "" {
			return tx.Where("firm_id IN ?", firmIDs)
		}
		return tx
	}

	var plans []accountPlanModel
	if err := scoped(db).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("load account plans: %w", err)
	}
	for _, p := range plans {
		rows = append(rows, model.Row{Table: model.TableAccountPlans, Fields: map[string]any{
			"id":                p.ID,
			"firm":              slugByID[p.FirmID],
			"name":              p.Name,
			"account_size":      p.AccountSize,
			"evaluation_fee":    p.EvaluationFee,
			"activation_fee":    p.ActivationFee,
			"price_total":       p.PriceTotal,
			"profit_target":     p.ProfitTarget,
			"max_contracts":     p.MaxContracts,
			"drawdown_type":     p.DrawdownType,
			"trailing_drawdown": p.TrailingDrawdown,
			"eod_drawdown":      p.EODDrawdown,
		}})
	}

	// Global FAQs (firm_id IS NULL) apply regardless of the firm filter.
	var faqs []faqModel
	faqQuery := db
	if opt.Firm != "" {
		faqQuery = faqQuery.Where("firm_id IN ? OR firm_id IS NULL", firmIDs)
	}
	if err := faqQuery.Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("load faqs: %w", err)
	}
	for _, q := range faqs {
		fields := map[string]any{
			"id":       q.ID,
			"question": q.Question,
			"answer":   q.Answer,
			"category": q.Category,
		}
		if q.FirmID != nil {
			fields["firm"] = slugByID[*q.FirmID]
		}
		rows = append(rows, model.Row{Table: model.TableFAQs, Fields: fields})
	}

	var rules []tradingRuleModel
	if err := scoped(db).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("load trading rules: %w", err)
	}
	for _, tr := range rules {
		rows = append(rows, model.Row{Table: model.TableTradingRules, Fields: map[string]any{
			"id":          tr.ID,
			"firm":        slugByID[tr.FirmID],
			"rule_name":   tr.RuleName,
			"description": tr.Description,
			"applies_to":  tr.AppliesTo,
			"penalty":     tr.Penalty,
		}})
	}

	var policies []payoutPolicyModel
	if err := scoped(db).Find(&policies).Error; err != nil {
		return nil, fmt.Errorf("load payout policies: %w", err)
	}
	for _, pp := range policies {
		rows = append(rows, model.Row{Table: model.TablePayoutPolicies, Fields: map[string]any{
			"id":                pp.ID,
			"firm":              slugByID[pp.FirmID],
			"min_payout":        pp.MinPayout,
			"payout_frequency":  pp.PayoutFrequency,
			"profit_split":      pp.ProfitSplit,
			"first_payout_days": pp.FirstPayoutDays,
			"payment_methods":   pp.PaymentMethods,
		}})
	}

	var platforms []platformModel
	if err := scoped(db).Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("load platforms: %w", err)
	}
	for _, pl := range platforms {
		rows = append(rows, model.Row{Table: model.TablePlatforms, Fields: map[string]any{
			"id":           pl.ID,
			"firm":         slugByID[pl.FirmID],
			"name":         pl.Name,
			"platform_fee": pl.PlatformFee,
			"data_feed":    pl.DataFeed,
			"notes":        pl.Notes,
		}})
	}

	return rows, nil
}

func firmRow(f firmModel) model.Row {
	return model.Row{Table: model.TableFirms, Fields: map[string]any{
		"id":          f.ID,
		"firm":        f.Slug,
		"name":        f.Name,
		"slug":        f.Slug,
		"description": f.Description,
		"founded":     f.Founded,
		"highlights":  f.Highlights,
		"website":     f.Website,
		"updated_at":  f.UpdatedAt,
	}}
}
