// Command seed-firms populates the SQLite database with the prop firms the
// assistant answers about. Safe to re-run: existing firms are left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"propfirm-assistant/config"
	sqliteRepo "propfirm-assistant/internal/assistant/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", cfg.Database.Path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		fmt.Println("Failed to open database: ", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := sqliteRepo.InitSchema(ctx, db); err != nil {
		fmt.Println("Failed to migrate schema: ", err)
		os.Exit(1)
	}

	if err := sqliteRepo.Seed(ctx, db, firms(), globalFAQs()); err != nil {
		fmt.Println("Failed to seed: ", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d firms into %s\n", len(firms()), cfg.Database.Path)
}

func firms() []sqliteRepo.FirmSeed {
	return []sqliteRepo.FirmSeed{
		{
			Name:        "Apex Trader Funding",
			Slug:        "apex",
			Description: "Una de las prop firms de futuros más grandes, conocida por sus descuentos agresivos y cuentas de gran tamaño.",
			Founded:     2021,
			Highlights:  "Descuentos frecuentes de hasta 80%, hasta 20 cuentas simultáneas, payouts cada 8 días",
			Website:     "https://apextraderfunding.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "Apex 25K", AccountSize: "25K", EvaluationFee: 147, ActivationFee: 85, PriceTotal: 232, ProfitTarget: 1500, MaxContracts: 4, DrawdownType: "trailing", TrailingDrawdown: 1500},
				{Name: "Apex 50K", AccountSize: "50K", EvaluationFee: 167, ActivationFee: 85, PriceTotal: 252, ProfitTarget: 3000, MaxContracts: 10, DrawdownType: "trailing", TrailingDrawdown: 2500},
				{Name: "Apex 100K", AccountSize: "100K", EvaluationFee: 207, ActivationFee: 85, PriceTotal: 292, ProfitTarget: 6000, MaxContracts: 14, DrawdownType: "trailing", TrailingDrawdown: 3000},
				{Name: "Apex 250K", AccountSize: "250K", EvaluationFee: 517, ActivationFee: 85, PriceTotal: 602, ProfitTarget: 15000, MaxContracts: 27, DrawdownType: "trailing", TrailingDrawdown: 6500},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Cuánto cuesta la evaluación de Apex?", Answer: "La evaluación de 50K cuesta $167 al mes, aunque casi siempre hay cupones con descuentos de 50% a 80%.", Category: "precios"},
				{Question: "¿Apex permite operar noticias?", Answer: "Sí, Apex permite operar durante noticias tanto en evaluación como en cuentas fondeadas.", Category: "reglas"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Regla de consistencia 30%", Description: "Ningún día de trading puede representar más del 30% del profit total al solicitar un retiro.", AppliesTo: "cuentas fondeadas", Penalty: "retiro denegado hasta cumplir el ratio"},
				{RuleName: "Cierre antes de las 4:59 PM ET", Description: "Todas las posiciones deben cerrarse antes de las 4:59 PM ET; no se permite mantener posiciones overnight.", AppliesTo: "todas las cuentas", Penalty: "incumplimiento de la evaluación"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 500, PayoutFrequency: "cada 8 días", ProfitSplit: "100% primeros $25K, luego 90/10", FirstPayoutDays: 8, PaymentMethods: "transferencia bancaria, Plane"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "NinjaTrader", PlatformFee: 0, DataFeed: "Rithmic", Notes: "incluida en la suscripción"},
				{Name: "Tradovate", PlatformFee: 0, DataFeed: "Tradovate", Notes: "acceso vía WealthCharts incluido"},
			},
		},
		{
			Name:        "Bulenox",
			Slug:        "bulenox",
			Description: "Prop firm de futuros con evaluación de una sola fase y opción de drawdown EOD.",
			Founded:     2022,
			Highlights:  "Opción de drawdown al cierre del día, sin regla de consistencia en varios planes",
			Website:     "https://bulenox.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "Bulenox 25K", AccountSize: "25K", EvaluationFee: 145, ActivationFee: 143, PriceTotal: 288, ProfitTarget: 1500, MaxContracts: 3, DrawdownType: "eod", EODDrawdown: 1000},
				{Name: "Bulenox 50K", AccountSize: "50K", EvaluationFee: 175, ActivationFee: 143, PriceTotal: 318, ProfitTarget: 3000, MaxContracts: 7, DrawdownType: "eod", EODDrawdown: 2000},
				{Name: "Bulenox 100K", AccountSize: "100K", EvaluationFee: 215, ActivationFee: 143, PriceTotal: 358, ProfitTarget: 6000, MaxContracts: 12, DrawdownType: "trailing", TrailingDrawdown: 3000},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Bulenox tiene regla de consistencia?", Answer: "Los planes con drawdown EOD no tienen regla de consistencia; los planes con trailing sí aplican una regla del 40%.", Category: "reglas"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Sin overnight", Description: "Las posiciones deben cerrarse antes del cierre de la sesión CME.", AppliesTo: "todas las cuentas", Penalty: "cuenta incumplida"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 500, PayoutFrequency: "quincenal", ProfitSplit: "90/10", FirstPayoutDays: 14, PaymentMethods: "transferencia bancaria, criptomonedas"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "NinjaTrader", PlatformFee: 0, DataFeed: "Rithmic", Notes: ""},
			},
		},
		{
			Name:        "TakeProfit Trader",
			Slug:        "takeprofit",
			Description: "Prop firm enfocada en retiros rápidos: el trader puede retirar desde el primer día fondeado.",
			Founded:     2021,
			Highlights:  "Retiros el mismo día con cuenta PRO, sin mínimo de días de trading",
			Website:     "https://takeprofittrader.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "TPT 50K", AccountSize: "50K", EvaluationFee: 170, ActivationFee: 0, PriceTotal: 170, ProfitTarget: 3000, MaxContracts: 6, DrawdownType: "eod", EODDrawdown: 2000},
				{Name: "TPT 100K", AccountSize: "100K", EvaluationFee: 330, ActivationFee: 0, PriceTotal: 330, ProfitTarget: 6000, MaxContracts: 12, DrawdownType: "eod", EODDrawdown: 3000},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Cuándo puedo retirar con TakeProfit Trader?", Answer: "Con la cuenta PRO puedes retirar desde el primer día; los retiros se procesan el mismo día hábil.", Category: "retiros"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Drawdown al cierre del día", Description: "El drawdown se calcula al cierre de la jornada, no tick a tick.", AppliesTo: "todas las cuentas", Penalty: "cuenta incumplida"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 0, PayoutFrequency: "a demanda", ProfitSplit: "90/10", FirstPayoutDays: 1, PaymentMethods: "ACH, transferencia bancaria"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "NinjaTrader", PlatformFee: 0, DataFeed: "Rithmic", Notes: ""},
				{Name: "Quantower", PlatformFee: 0, DataFeed: "Rithmic", Notes: ""},
			},
		},
		{
			Name:        "MyFundedFutures",
			Slug:        "myfundedfutures",
			Description: "Prop firm con planes sin regla de consistencia y opción de cuenta directa sin evaluación.",
			Founded:     2023,
			Highlights:  "Plan Starter sin regla de consistencia, payouts desde el día 1 en plan Expert",
			Website:     "https://myfundedfutures.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "MFFU Starter 50K", AccountSize: "50K", EvaluationFee: 127, ActivationFee: 0, PriceTotal: 127, ProfitTarget: 3000, MaxContracts: 5, DrawdownType: "eod", EODDrawdown: 2500},
				{Name: "MFFU Expert 100K", AccountSize: "100K", EvaluationFee: 344, ActivationFee: 0, PriceTotal: 344, ProfitTarget: 6000, MaxContracts: 10, DrawdownType: "eod", EODDrawdown: 3500},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿MyFundedFutures tiene regla de consistencia?", Answer: "El plan Starter no tiene regla de consistencia; el plan Expert aplica una regla del 40% para retiros.", Category: "reglas"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Consistencia 40% (Expert)", Description: "En el plan Expert, ningún día puede superar el 40% del profit acumulado al solicitar retiro.", AppliesTo: "plan Expert", Penalty: "retiro pospuesto"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 1000, PayoutFrequency: "cada 14 días", ProfitSplit: "100% primeros $10K, luego 90/10", FirstPayoutDays: 14, PaymentMethods: "transferencia bancaria, criptomonedas"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "Tradovate", PlatformFee: 0, DataFeed: "Tradovate", Notes: ""},
				{Name: "NinjaTrader", PlatformFee: 0, DataFeed: "Rithmic", Notes: ""},
			},
		},
		{
			Name:        "Alpha Futures",
			Slug:        "alphafutures",
			Description: "Prop firm con estructura de dos fases y énfasis en educación del trader.",
			Founded:     2023,
			Highlights:  "Split 90/10 desde el primer retiro, coaching incluido en planes avanzados",
			Website:     "https://alpha-futures.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "Alpha 50K", AccountSize: "50K", EvaluationFee: 149, ActivationFee: 0, PriceTotal: 149, ProfitTarget: 3000, MaxContracts: 5, DrawdownType: "eod", EODDrawdown: 2500},
				{Name: "Alpha 100K", AccountSize: "100K", EvaluationFee: 299, ActivationFee: 0, PriceTotal: 299, ProfitTarget: 6000, MaxContracts: 10, DrawdownType: "eod", EODDrawdown: 3000},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Qué split de ganancias ofrece Alpha Futures?", Answer: "Alpha Futures ofrece 90/10 a favor del trader desde el primer retiro.", Category: "retiros"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Mínimo 5 días de trading", Description: "Se requieren al menos 5 días operados antes del primer retiro.", AppliesTo: "cuentas fondeadas", Penalty: "retiro pospuesto"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 500, PayoutFrequency: "quincenal", ProfitSplit: "90/10", FirstPayoutDays: 10, PaymentMethods: "transferencia bancaria"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "Tradovate", PlatformFee: 0, DataFeed: "Tradovate", Notes: ""},
			},
		},
		{
			Name:        "Tradeify",
			Slug:        "tradeify",
			Description: "Prop firm con cuentas directas (straight-to-funded) y evaluaciones clásicas.",
			Founded:     2023,
			Highlights:  "Cuentas directas sin evaluación, drawdown EOD disponible",
			Website:     "https://tradeify.co",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "Tradeify Advanced 50K", AccountSize: "50K", EvaluationFee: 129, ActivationFee: 0, PriceTotal: 129, ProfitTarget: 3000, MaxContracts: 5, DrawdownType: "eod", EODDrawdown: 2000},
				{Name: "Tradeify Straight 50K", AccountSize: "50K", EvaluationFee: 489, ActivationFee: 0, PriceTotal: 489, ProfitTarget: 0, MaxContracts: 5, DrawdownType: "eod", EODDrawdown: 2000},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Qué es una cuenta straight-to-funded de Tradeify?", Answer: "Es una cuenta fondeada directa: pagas una sola vez y empiezas a operar capital de la firma sin pasar evaluación.", Category: "planes"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Consistencia 20% (Straight)", Description: "En cuentas directas, ningún día puede superar el 20% del profit total al solicitar retiro.", AppliesTo: "cuentas straight-to-funded", Penalty: "retiro pospuesto"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 500, PayoutFrequency: "cada 14 días", ProfitSplit: "90/10", FirstPayoutDays: 14, PaymentMethods: "transferencia bancaria, criptomonedas"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "Tradovate", PlatformFee: 0, DataFeed: "Tradovate", Notes: ""},
				{Name: "TradingView", PlatformFee: 0, DataFeed: "Tradovate", Notes: "vía conexión con Tradovate"},
			},
		},
		{
			Name:        "Vision Trade Futures",
			Slug:        "visiontrade",
			Description: "Prop firm emergente orientada al mercado hispanohablante, con soporte en español.",
			Founded:     2024,
			Highlights:  "Soporte completo en español, evaluación de una fase",
			Website:     "https://visiontradefutures.com",
			Plans: []sqliteRepo.AccountPlanSeed{
				{Name: "Vision 50K", AccountSize: "50K", EvaluationFee: 139, ActivationFee: 99, PriceTotal: 238, ProfitTarget: 3000, MaxContracts: 5, DrawdownType: "eod", EODDrawdown: 2200},
				{Name: "Vision 100K", AccountSize: "100K", EvaluationFee: 249, ActivationFee: 99, PriceTotal: 348, ProfitTarget: 6000, MaxContracts: 10, DrawdownType: "eod", EODDrawdown: 3200},
			},
			FAQs: []sqliteRepo.FAQSeed{
				{Question: "¿Vision Trade atiende en español?", Answer: "Sí, todo el soporte y la documentación de Vision Trade Futures están disponibles en español.", Category: "general"},
			},
			Rules: []sqliteRepo.TradingRuleSeed{
				{RuleName: "Sin noticias de alto impacto", Description: "No se permite abrir posiciones 2 minutos antes y después de noticias de alto impacto.", AppliesTo: "evaluación", Penalty: "operación anulada"},
			},
			Payout:    &sqliteRepo.PayoutPolicySeed{MinPayout: 250, PayoutFrequency: "semanal", ProfitSplit: "80/20", FirstPayoutDays: 7, PaymentMethods: "transferencia bancaria, PayPal"},
			Platforms: []sqliteRepo.PlatformSeed{
				{Name: "NinjaTrader", PlatformFee: 0, DataFeed: "Rithmic", Notes: ""},
				{Name: "Quantower", PlatformFee: 14, DataFeed: "Rithmic", Notes: "cargo mensual"},
			},
		},
	}
}

func globalFAQs() []sqliteRepo.FAQSeed {
	return []sqliteRepo.FAQSeed{
		{Question: "¿Qué es una prop firm?", Answer: "Una prop firm (empresa de trading propietario) financia a traders con capital de la empresa a cambio de un porcentaje de las ganancias. El trader pasa una evaluación y luego opera una cuenta fondeada.", Category: "general"},
		{Question: "¿Cómo funciona una evaluación?", Answer: "Pagas una cuota, operas una cuenta de simulación con reglas de riesgo y un objetivo de profit. Si lo alcanzas sin violar las reglas, recibes una cuenta fondeada.", Category: "general"},
		{Question: "¿Qué horario tienen los mercados de futuros?", Answer: "Los futuros de CME operan casi 23 horas, de domingo 6 PM ET a viernes 5 PM ET, con una pausa diaria de 5 a 6 PM ET.", Category: "general"},
		{Question: "¿Qué métodos de pago aceptan las firmas?", Answer: "La mayoría acepta tarjeta de crédito o débito para las cuotas, y pagan retiros por transferencia bancaria o criptomonedas según la firma.", Category: "general"},
	}
}
