package cache

// precomputedSeed is a canned answer for a common (pattern, firm) query pair.
// Seeds survive cache clears; they are reference data, not session cache.
type precomputedSeed struct {
	Pattern  string
	Firm     string
	Response string
}

// precomputedPatterns are the trigger substrings tested against every
// normalized incoming question. A match routes the lookup to the precomputed
// table and marks fresh answers for opportunistic first-write-wins storage.
var precomputedPatterns = []string{
	"que es una prop firm",
	"como funciona",
	"horario",
	"que firmas",
	"cuales firmas",
	"como empiezo",
	"metodos de pago",
}

// precomputedSeeds is the static table loaded at engine construction.
var precomputedSeeds = []precomputedSeed{
	{
		Pattern: "que es una prop firm",
		Firm:    "",
		Response: "Una prop firm (firma de trading propietario) te da acceso a una cuenta " +
			"fondeada con su capital: tú operas, compartes las ganancias y la firma asume " +
			"el riesgo. Primero pasas una evaluación que demuestra que operas con disciplina.",
	},
	{
		Pattern: "como funciona",
		Firm:    "",
		Response: "El proceso general: 1) eliges un tamaño de cuenta y pagas la evaluación, " +
			"2) cumples el objetivo de ganancias respetando el drawdown, 3) recibes una cuenta " +
			"fondeada y retiras tus ganancias según el reparto de la firma. Pregúntame por " +
			"cualquier firma para ver sus condiciones exactas.",
	},
	{
		Pattern: "horario",
		Firm:    "",
		Response: "Los futuros operan casi 23 horas al día de domingo a viernes (CME). Cada " +
			"firma define su hora de cierre obligatorio de posiciones, normalmente antes del " +
			"cierre de sesión a las 4:59 PM ET. Dime qué firma usas y te doy su horario exacto.",
	},
	{
		Pattern: "que firmas",
		Firm:    "",
		Response: "Trabajo con información de siete firmas: Apex, Bulenox, TakeProfit, " +
			"MyFundedFutures, Alpha Futures, Tradeify y Vision Trade. Pregúntame por precios, " +
			"reglas, retiros o plataformas de cualquiera de ellas.",
	},
	{
		Pattern: "cuales firmas",
		Firm:    "",
		Response: "Tengo datos de Apex, Bulenox, TakeProfit, MyFundedFutures, Alpha Futures, " +
			"Tradeify y Vision Trade. ¿Sobre cuál quieres saber más?",
	},
	{
		Pattern: "como empiezo",
		Firm:    "",
		Response: "Para empezar: elige una firma y un tamaño de cuenta acorde a tu experiencia, " +
			"paga la evaluación y practica el plan de trading que vas a usar. Si me dices tu " +
			"presupuesto te comparo las evaluaciones disponibles.",
	},
	{
		Pattern: "metodos de pago",
		Firm:    "apex",
		Response: "Apex acepta tarjeta de crédito/débito y PayPal para las evaluaciones; los " +
			"retiros se procesan por WISE o Plane. Consulta su panel para opciones según tu país.",
	},
}
