package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	expectedResponse := &Response{
		Text:         "Hello from primary provider",
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	req := &Request{UserPrompt: "Hello"}

	resp, err := manager.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != expectedResponse.Text {
		t.Errorf("Expected text %q, got %q", expectedResponse.Text, resp.Text)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got %q", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call to primary provider, got %d", primary.callCount)
	}
	if len(logger.infoMessages) == 0 {
		t.Error("Expected success to be logged")
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}

	secondary := &mockProvider{
		name:       "secondary",
		model:      "secondary-model",
		shouldFail: false,
		response: &Response{
			Text:         "Hello from secondary",
			ProviderName: "secondary",
			ModelName:    "secondary-model",
		},
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{UserPrompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected fallback to secondary, got %q", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected 2 attempts on primary before fallback, got %d", primary.callCount)
	}
	if len(logger.warnMessages) == 0 {
		t.Error("Expected primary failure to be logged")
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", shouldFail: true}

	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{UserPrompt: "Hello"})
	if err == nil {
		t.Fatal("Expected error when all providers fail")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if primary.callCount != 1 || secondary.callCount != 1 {
		t.Errorf("Expected 1 call each, got primary=%d secondary=%d",
			primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: &Response{Text: "should not be reached"},
	}

	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{UserPrompt: "Hello"})
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary to be skipped, got %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{UserPrompt: "Hello"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", response: &Response{Text: "ok"}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "empty user prompt", req: &Request{SystemPrompt: "system only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.GenerateContent(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Expected ErrInvalidRequest, got: %v", err)
			}
			if primary.callCount != 0 {
				t.Errorf("Expected provider not to be called, got %d calls", primary.callCount)
			}
		})
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}

	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   10,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), &Request{UserPrompt: "Hello"})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected error when global timeout fires")
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("Expected early abort, took %v", elapsed)
	}
}
