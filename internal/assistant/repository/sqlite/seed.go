package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Seed input types. The seed is idempotent on firm slug: an existing firm is
// skipped entirely so re-running the seeder never duplicates child rows.

type FirmSeed struct {
	Name        string
	Slug        string
	Description string
	Founded     int
	Highlights  string
	Website     string

	Plans     []AccountPlanSeed
	FAQs      []FAQSeed
	Rules     []TradingRuleSeed
	Payout    *PayoutPolicySeed
	Platforms []PlatformSeed
}

type AccountPlanSeed struct {
	Name             string
	AccountSize      string
	EvaluationFee    float64
	ActivationFee    float64
	PriceTotal       float64
	ProfitTarget     float64
	MaxContracts     int
	DrawdownType     string
	TrailingDrawdown float64
	EODDrawdown      float64
}

type FAQSeed struct {
	Question string
	Answer   string
	Category string
}

type TradingRuleSeed struct {
	RuleName    string
	Description string
	AppliesTo   string
	Penalty     string
}

type PayoutPolicySeed struct {
	MinPayout       float64
	PayoutFrequency string
	ProfitSplit     string
	FirstPayoutDays int
	PaymentMethods  string
}

type PlatformSeed struct {
	Name        string
	PlatformFee float64
	DataFeed    string
	Notes       string
}

// Seed inserts firms and their child rows, plus firm-agnostic FAQs.
func Seed(ctx context.Context, db *gorm.DB, firms []FirmSeed, globalFAQs []FAQSeed) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range firms {
			if err := seedFirm(tx, seed); err != nil {
				return fmt.Errorf("seed firm %s: %w", seed.Slug, err)
			}
		}

		for _, faq := range globalFAQs {
			var count int64
			if err := tx.Model(&faqModel{}).
				Where("firm_id IS NULL AND question = ?", faq.Question).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&faqModel{
				Question: faq.Question,
				Answer:   faq.Answer,
				Category: faq.Category,
			}).Error; err != nil {
				return fmt.Errorf("seed global faq: %w", err)
			}
		}

		return nil
	})
}

func seedFirm(tx *gorm.DB, seed FirmSeed) error {
	var existing int64
	if err := tx.Model(&firmModel{}).Where("slug = ?", seed.Slug).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	firm := firmModel{
		Name:        seed.Name,
		Slug:        seed.Slug,
		Description: seed.Description,
		Founded:     seed.Founded,
		Highlights:  seed.Highlights,
		Website:     seed.Website,
	}
	if err := tx.Create(&firm).Error; err != nil {
		return err
	}

	for _, p := range seed.Plans {
		if err := tx.Create(&accountPlanModel{
			FirmID:           firm.ID,
			Name:             p.Name,
			AccountSize:      p.AccountSize,
			EvaluationFee:    p.EvaluationFee,
			ActivationFee:    p.ActivationFee,
			PriceTotal:       p.PriceTotal,
			ProfitTarget:     p.ProfitTarget,
			MaxContracts:     p.MaxContracts,
			DrawdownType:     p.DrawdownType,
			TrailingDrawdown: p.TrailingDrawdown,
			EODDrawdown:      p.EODDrawdown,
		}).Error; err != nil {
			return err
		}
	}

	for _, q := range seed.FAQs {
		firmID := firm.ID
		if err := tx.Create(&faqModel{
			FirmID:   &firmID,
			Question: q.Question,
			Answer:   q.Answer,
			Category: q.Category,
		}).Error; err != nil {
			return err
		}
	}

	for _, r := range seed.Rules {
		if err := tx.Create(&tradingRuleModel{
			FirmID:      firm.ID,
			RuleName:    r.RuleName,
			Description: r.Description,
			AppliesTo:   r.AppliesTo,
			Penalty:     r.Penalty,
		}).Error; err != nil {
			return err
		}
	}

	if seed.Payout != nil {
		if err := tx.Create(&payoutPolicyModel{
			FirmID:          firm.ID,
			MinPayout:       seed.Payout.MinPayout,
			PayoutFrequency: seed.Payout.PayoutFrequency,
			ProfitSplit:     seed.Payout.ProfitSplit,
			FirstPayoutDays: seed.Payout.FirstPayoutDays,
			PaymentMethods:  seed.Payout.PaymentMethods,
		}).Error; err != nil {
			return err
		}
	}

	for _, pl := range seed.Platforms {
		if err := tx.Create(&platformModel{
			FirmID:      firm.ID,
			Name:        pl.Name,
			PlatformFee: pl.PlatformFee,
			DataFeed:    pl.DataFeed,
			Notes:       pl.Notes,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
