package intent

import "propfirm-assistant/internal/model"

// Log prefixes
const (
	LogPrefixDetect = "internal.intent.Detect"
)

// DefaultConfidenceFloor is the minimum winning confidence required to keep
// a non-general intent. Tightened from 0.10 after the generic fallback was
// over-triggering on short pricing questions.
const DefaultConfidenceFloor = 0.05

// profiles is the static intent table. Declaration order matters: ties on
// confidence keep the first-seen profile.
var profiles = []Profile{
	{
		Type: TypePricing,
		Keywords: []string{
			"precio", "cuesta", "cuestan", "costo", "cuanto", "cuánto",
			"pagar", "barato", "cara", "caro", "descuento", "oferta",
			"mensualidad", "tarifa", "vale",
		},
		RequiredFields: map[string][]string{
			model.TableAccountPlans: {"name", "evaluation_fee", "activation_fee", "account_size", "price_total"},
			model.TableFAQs:         {"question", "answer"},
		},
		ContextLabel: "precios y costos de cuentas",
	},
	{
		Type: TypePlans,
		Keywords: []string{
			"cuenta", "cuentas", "plan", "planes", "tamaño", "tamano",
			"contratos", "evaluacion", "evaluación", "fondeo", "fondeada",
			"fases", "objetivo", "50k", "100k", "150k", "250k",
		},
		RequiredFields: map[string][]string{
			model.TableAccountPlans: {"name", "account_size", "evaluation_fee", "profit_target", "max_contracts", "drawdown_type"},
			model.TableFAQs:         {"question", "answer"},
		},
		ContextLabel: "planes y tipos de cuenta",
	},
	{
		Type: TypePayout,
		Keywords: []string{
			"retiro", "retiros", "retirar", "cobrar", "cobro", "pago",
			"pagos", "payout", "split", "ganancias", "comision", "comisión",
			"transferencia", "minimo de retiro", "mínimo de retiro",
		},
		RequiredFields: map[string][]string{
			model.TablePayoutPolicies: {"min_payout", "payout_frequency", "profit_split", "first_payout_days", "payment_methods"},
			model.TableFAQs:           {"question", "answer"},
		},
		ContextLabel: "retiros y reparto de ganancias",
	},
	{
		Type: TypeDrawdown,
		Keywords: []string{
			"drawdown", "perdida", "pérdida", "perdidas", "pérdidas",
			"limite", "límite", "trailing", "eod", "riesgo", "maxima", "máxima",
		},
		RequiredFields: map[string][]string{
			model.TableAccountPlans: {"name", "account_size", "drawdown_type", "trailing_drawdown", "eod_drawdown"},
			model.TableTradingRules: {"rule_name", "description"},
			model.TableFAQs:         {"question", "answer"},
		},
		ContextLabel: "drawdown y límites de pérdida",
	},
	{
		Type: TypeRules,
		Keywords: []string{
			"regla", "reglas", "consistencia", "noticias", "overnight",
			"permitido", "prohibido", "violacion", "violación", "dca",
			"scalping", "copiar", "copy",
		},
		RequiredFields: map[string][]string{
			model.TableTradingRules: {"rule_name", "description", "applies_to", "penalty"},
			model.TableFAQs:         {"question", "answer"},
		},
		ContextLabel: "reglas de trading",
	},
	{
		Type: TypePlatforms,
		Keywords: []string{
			"plataforma", "plataformas", "ninjatrader", "tradovate",
			"tradingview", "rithmic", "quantower", "metatrader", "datos",
			"grafico", "gráfico",
		},
		RequiredFields: map[string][]string{
			model.TablePlatforms: {"name", "platform_fee", "data_feed", "notes"},
			model.TableFAQs:      {"question", "answer"},
		},
		ContextLabel: "plataformas de trading",
	},
	{
		Type: TypeComparison,
		Keywords: []string{
			"comparar", "comparacion", "comparación", "mejor", "diferencia",
			"versus", "vs", "conviene", "recomiendas", "entre",
		},
		RequiredFields: map[string][]string{
			model.TableFirms:        {"name", "founded", "highlights"},
			model.TableAccountPlans: {"name", "account_size", "evaluation_fee", "price_total"},
			model.TableFAQs:         {"question", "answer"},
		},
		ContextLabel: "comparación entre firmas",
	},
	{
		// general is the always-available fallback; it matches nothing by
		// keyword and its field selection lives in the context filter.
		Type:           TypeGeneral,
		Keywords:       nil,
		RequiredFields: nil,
		ContextLabel:   "información general",
	},
}
