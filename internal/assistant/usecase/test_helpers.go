package usecase

import (
	"context"

	"propfirm-assistant/internal/assistant/repository"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/contextfilter"
	"propfirm-assistant/internal/intent"
	"propfirm-assistant/internal/model"
	"propfirm-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock firm repository with injectable behavior
type mockRepo struct {
	listFirmsFn   func(ctx context.Context) ([]model.Row, error)
	contextRowsFn func(ctx context.Context, opt repository.ContextRowsOptions) ([]model.Row, error)
	contextCalls  int
}

func (m *mockRepo) ListFirms(ctx context.Context) ([]model.Row, error) {
	if m.listFirmsFn != nil {
		return m.listFirmsFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) ContextRows(ctx context.Context, opt repository.ContextRowsOptions) ([]model.Row, error) {
	m.contextCalls++
	if m.contextRowsFn != nil {
		return m.contextRowsFn(ctx, opt)
	}
	return nil, nil
}

// Mock LLM generator with injectable behavior
type mockGenerator struct {
	generateFn func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	callCount  int
	lastReq    *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	m.lastReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &llmprovider.Response{Text: "respuesta de prueba", ProviderName: "mock"}, nil
}

// newTestUseCase wires a usecase with a real cache, classifier, and filter
// around the given mocks.
func newTestUseCase(repo *mockRepo, llm *mockGenerator) *implUseCase {
	l := &mockLogger{}
	engine, err := cache.New(l, cache.Config{})
	if err != nil {
		panic(err)
	}
	classifier := intent.New(intent.DefaultConfidenceFloor)
	filter := contextfilter.New(l, classifier, contextfilter.MinContextTokens)
	return New(l, repo, engine, classifier, filter, llm)
}

// sampleRows returns a plausible context set spanning several tables.
func sampleRows() []model.Row {
	return []model.Row{
		{Table: model.TableFirms, Fields: map[string]any{
			"id": 1, "firm": "apex", "name": "Apex Trader Funding",
			"founded": 2021, "highlights": "Cuentas grandes y descuentos frecuentes",
		}},
		{Table: model.TableAccountPlans, Fields: map[string]any{
			"id": 1, "firm": "apex", "name": "Apex 50K", "account_size": "50K",
			"evaluation_fee": 167.0, "activation_fee": 85.0, "price_total": 252.0,
			"profit_target": 3000.0, "max_contracts": 10, "drawdown_type": "trailing",
		}},
		{Table: model.TableAccountPlans, Fields: map[string]any{
			"id": 2, "firm": "apex", "name": "Apex 100K", "account_size": "100K",
			"evaluation_fee": 207.0, "activation_fee": 85.0, "price_total": 292.0,
			"profit_target": 6000.0, "max_contracts": 14, "drawdown_type": "trailing",
		}},
		{Table: model.TableFAQs, Fields: map[string]any{
			"id": 1, "question": "¿Cuánto cuesta la evaluación de Apex?",
			"answer": "La evaluación de 50K cuesta $167 al mes, con descuentos frecuentes.", "category": "precios",
		}},
		{Table: model.TableFAQs, Fields: map[string]any{
			"id": 2, "question": "¿Qué plataformas puedo usar?",
			"answer": "NinjaTrader, Tradovate y TradingView entre otras.", "category": "plataformas",
		}},
		{Table: model.TablePayoutPolicies, Fields: map[string]any{
			"id": 1, "firm": "apex", "min_payout": 500.0, "payout_frequency": "cada 8 días",
			"profit_split": "90/10", "first_payout_days": 8, "payment_methods": "transferencia, Plane",
		}},
	}
}
