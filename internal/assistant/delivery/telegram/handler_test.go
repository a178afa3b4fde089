package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"propfirm-assistant/internal/assistant"
	"propfirm-assistant/internal/assistant/delivery/telegram"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/model"
	pkgTelegram "propfirm-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	answerOutput assistant.AnswerOutput
	answerErr    error
	firms        []assistant.FirmSummary
	firmsErr     error
	metrics      cache.Metrics

	mu          sync.Mutex
	answerCalls []assistant.AnswerInput
}

func (m *mockUseCase) Answer(ctx context.Context, sc model.Scope, input assistant.AnswerInput) (assistant.AnswerOutput, error) {
	m.mu.Lock()
	m.answerCalls = append(m.answerCalls, input)
	m.mu.Unlock()
	return m.answerOutput, m.answerErr
}

func (m *mockUseCase) ListFirms(ctx context.Context) ([]assistant.FirmSummary, error) {
	return m.firms, m.firmsErr
}

func (m *mockUseCase) CacheMetrics(ctx context.Context) cache.Metrics {
	return m.metrics
}

func (m *mockUseCase) ClearCache(ctx context.Context) {}

// telegramRecorder captures sendMessage calls made against a fake Bot API.
type telegramRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *telegramRecorder) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/sendMessage") {
			var body map[string]interface{}
			json.NewDecoder(req.Body).Decode(&body)
			if text, ok := body["text"].(string); ok {
				r.mu.Lock()
				r.messages = append(r.messages, text)
				r.mu.Unlock()
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
}

// waitForMessage polls until the recorder has at least n messages or times out.
func (r *telegramRecorder) waitForMessage(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		count := len(r.messages)
		msgs := append([]string(nil), r.messages...)
		r.mu.Unlock()
		if count >= n {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d telegram message(s)", n)
	return nil
}

func postUpdate(t *testing.T, h telegram.Handler, text string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 10,
			From:      &pkgTelegram.User{ID: 42, Username: "trader"},
			Chat:      &pkgTelegram.Chat{ID: 99, Type: "private"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleWebhook(c)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_AnswersQuestion(t *testing.T) {
	rec := &telegramRecorder{}
	ts := rec.server()
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	uc := &mockUseCase{
		answerOutput: assistant.AnswerOutput{
			ResponseText: "La cuenta de 50K cuesta $167 al mes.",
			IntentType:   "pricing",
			Source:       assistant.SourceLLM,
		},
	}

	h := telegram.New(&mockLogger{}, uc, bot)
	w := postUpdate(t, h, "¿Cuánto cuesta la cuenta de 50K?")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 ack, got %d", w.Code)
	}

	msgs := rec.waitForMessage(t, 1)
	if !strings.Contains(msgs[len(msgs)-1], "$167") {
		t.Errorf("expected answer text, got %q", msgs[len(msgs)-1])
	}
}

func TestHandleWebhook_FirmPrefix(t *testing.T) {
	rec := &telegramRecorder{}
	ts := rec.server()
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	uc := &mockUseCase{
		answerOutput: assistant.AnswerOutput{ResponseText: "ok"},
		firms: []assistant.FirmSummary{
			{Name: "Apex Trader Funding", Slug: "apex"},
		},
	}

	h := telegram.New(&mockLogger{}, uc, bot)
	postUpdate(t, h, "apex: ¿cuál es el drawdown?")
	rec.waitForMessage(t, 1)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.answerCalls) != 1 {
		t.Fatalf("expected 1 Answer call, got %d", len(uc.answerCalls))
	}
	if uc.answerCalls[0].Firm != "apex" {
		t.Errorf("expected firm 'apex', got %q", uc.answerCalls[0].Firm)
	}
	if uc.answerCalls[0].Question != "¿cuál es el drawdown?" {
		t.Errorf("unexpected question: %q", uc.answerCalls[0].Question)
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	rec := &telegramRecorder{}
	ts := rec.server()
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	uc := &mockUseCase{
		firms: []assistant.FirmSummary{
			{Name: "Apex Trader Funding", Slug: "apex"},
			{Name: "Bulenox", Slug: "bulenox"},
		},
		metrics: cache.Metrics{
			TotalQueries: 10,
			ExactHits:    4,
			SemanticHits: 2,
			Misses:       4,
		},
	}

	h := telegram.New(&mockLogger{}, uc, bot)

	t.Run("start", func(t *testing.T) {
		postUpdate(t, h, "/start")
		msgs := rec.waitForMessage(t, 1)
		if !strings.Contains(msgs[len(msgs)-1], "prop firms") {
			t.Errorf("unexpected /start reply: %q", msgs[len(msgs)-1])
		}
	})

	t.Run("firms", func(t *testing.T) {
		postUpdate(t, h, "/firms")
		msgs := rec.waitForMessage(t, 2)
		reply := msgs[len(msgs)-1]
		if !strings.Contains(reply, "Apex Trader Funding") || !strings.Contains(reply, "bulenox") {
			t.Errorf("unexpected /firms reply: %q", reply)
		}
	})

	t.Run("stats", func(t *testing.T) {
		postUpdate(t, h, "/stats")
		msgs := rec.waitForMessage(t, 3)
		reply := msgs[len(msgs)-1]
		if !strings.Contains(reply, "Hits exactos: 4") {
			t.Errorf("unexpected /stats reply: %q", reply)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		postUpdate(t, h, "/bogus")
		msgs := rec.waitForMessage(t, 4)
		if !strings.Contains(msgs[len(msgs)-1], "/help") {
			t.Errorf("unexpected reply: %q", msgs[len(msgs)-1])
		}
	})
}

func TestHandleWebhook_UseCaseError(t *testing.T) {
	rec := &telegramRecorder{}
	ts := rec.server()
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	uc := &mockUseCase{answerErr: assistant.ErrGeneration}

	h := telegram.New(&mockLogger{}, uc, bot)
	w := postUpdate(t, h, "pregunta cualquiera")

	// Webhook still acks 200; the user gets an apology message.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 ack, got %d", w.Code)
	}
	msgs := rec.waitForMessage(t, 1)
	if !strings.Contains(msgs[len(msgs)-1], "No pude responder") {
		t.Errorf("expected apology message, got %q", msgs[len(msgs)-1])
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bot := pkgTelegram.NewBot("test-token")
	h := telegram.New(&mockLogger{}, &mockUseCase{}, bot)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 5})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleWebhook(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored status, got %s", w.Body.String())
	}
}
