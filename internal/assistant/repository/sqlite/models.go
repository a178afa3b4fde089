package sqlite

import "time"

// Persistence models. Field names line up with the context filter's
// projection field sets, so rows survive filtering without renaming.

type firmModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	Founded     int
	Highlights  string
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (firmModel) TableName() string {
	return "firms"
}

type accountPlanModel struct {
	ID               uint   `gorm:"primaryKey"`
	FirmID           uint   `gorm:"index:idx_account_plans_firm;not null"`
	Name             string `gorm:"not null"`
	AccountSize      string
	EvaluationFee    float64
	ActivationFee    float64
	PriceTotal       float64
	ProfitTarget     float64
	MaxContracts     int
	DrawdownType     string
	TrailingDrawdown float64
	EODDrawdown      float64 `gorm:"column:eod_drawdown"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (accountPlanModel) TableName() string {
	return "account_plans"
}

type faqModel struct {
	ID        uint  `gorm:"primaryKey"`
	FirmID    *uint `gorm:"index:idx_faqs_firm"` // nil = applies to all firms
	Question  string
	Answer    string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (faqModel) TableName() string {
	return "faqs"
}

type tradingRuleModel struct {
	ID          uint `gorm:"primaryKey"`
	FirmID      uint `gorm:"index:idx_trading_rules_firm;not null"`
	RuleName    string
	Description string
	AppliesTo   string
	Penalty     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (tradingRuleModel) TableName() string {
	return "trading_rules"
}

type payoutPolicyModel struct {
	ID              uint `gorm:"primaryKey"`
	FirmID          uint `gorm:"index:idx_payout_policies_firm;not null"`
	MinPayout       float64
	PayoutFrequency string
	ProfitSplit     string
	FirstPayoutDays int
	PaymentMethods  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (payoutPolicyModel) TableName() string {
	return "payout_policies"
}

type platformModel struct {
	ID          uint `gorm:"primaryKey"`
	FirmID      uint `gorm:"index:idx_platforms_firm;not null"`
	Name        string
	PlatformFee float64
	DataFeed    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (platformModel) TableName() string {
	return "platforms"
}
