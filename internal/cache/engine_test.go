package cache

import (
	"context"
	"testing"
	"time"
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

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(&mockLogger{}, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestLookup_ExactTier(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Store(ctx, "¿Cuánto cuesta la cuenta de 50K?", "apex", "Cuesta $167 al mes.")

	t.Run("identical question hits", func(t *testing.T) {
		hit, ok := e.Lookup(ctx, "¿Cuánto cuesta la cuenta de 50K?", "apex")
		if !ok {
			t.Fatal("expected hit")
		}
		if hit.Tier != TierExact {
			t.Errorf("expected exact tier, got %s", hit.Tier)
		}
		if hit.Response != "Cuesta $167 al mes." {
			t.Errorf("unexpected response: %q", hit.Response)
		}
	})

	t.Run("normalized variant hits", func(t *testing.T) {
		hit, ok := e.Lookup(ctx, "cuánto  cuesta la CUENTA de 50k", "apex")
		if !ok {
			t.Fatal("expected hit after normalization")
		}
		if hit.Tier != TierExact {
			t.Errorf("expected exact tier, got %s", hit.Tier)
		}
	})

	t.Run("different firm misses exact", func(t *testing.T) {
		hit, ok := e.Lookup(ctx, "¿Cuánto cuesta la cuenta de 50K?", "bulenox")
		if ok && hit.Tier == TierExact {
			t.Error("firm-scoped entry must not hit for another firm")
		}
	})
}

func TestLookup_SemanticTier(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Store(ctx, "cuanto cuesta la evaluacion apex", "apex", "La evaluación cuesta $167.")

	// Same vocabulary, different punctuation and casing, plus an extra short
	// word. The exact key differs but the embedding overlaps heavily.
	hit, ok := e.Lookup(ctx, "¿Cuanto cuesta la evaluacion de Apex?", "apex")
	if !ok {
		t.Fatal("expected semantic hit")
	}
	if hit.Tier != TierSemantic {
		t.Fatalf("expected semantic tier, got %s", hit.Tier)
	}
	if hit.Similarity < DefaultSimilarityFloor {
		t.Errorf("similarity %.2f below floor", hit.Similarity)
	}
	if hit.Response != "La evaluación cuesta $167." {
		t.Errorf("unexpected response: %q", hit.Response)
	}
}

func TestLookup_SemanticFloorRejectsWeakMatch(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Store(ctx, "cuanto cuesta la evaluacion apex", "apex", "respuesta")

	_, ok := e.Lookup(ctx, "reglas sobre noticias overnight prohibidas", "apex")
	if ok {
		t.Error("unrelated question must miss")
	}
}

func TestLookup_SemanticFirmFilter(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Store(ctx, "cuanto cuesta la evaluacion", "apex", "apex: $167")

	if _, ok := e.Lookup(ctx, "¿cuanto cuesta la evaluacion?", "bulenox"); ok {
		t.Error("semantic lookup must not cross firms")
	}
	if hit, ok := e.Lookup(ctx, "¿cuanto cuesta la evaluacion?", "apex"); !ok || hit.Response != "apex: $167" {
		t.Errorf("same-firm semantic lookup failed: ok=%v hit=%+v", ok, hit)
	}
}

func TestLookup_PrecomputedTier(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	hit, ok := e.Lookup(ctx, "Que es una prop firm?", "")
	if !ok {
		t.Fatal("expected precomputed hit from seed data")
	}
	if hit.Tier != TierPrecomputed {
		t.Errorf("expected precomputed tier, got %s", hit.Tier)
	}
	if hit.Response == "" {
		t.Error("expected seeded canned answer")
	}
}

func TestLookup_TierPrecedence(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	// A question seeded in L3 that we also store, making it live in L1+L2.
	e.Store(ctx, "que es una prop firm", "", "respuesta fresca del LLM")

	hit, ok := e.Lookup(ctx, "que es una prop firm", "")
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Tier != TierExact {
		t.Errorf("exact tier must win over lower tiers, got %s", hit.Tier)
	}
	if hit.Response != "respuesta fresca del LLM" {
		t.Errorf("unexpected response: %q", hit.Response)
	}
}

func TestTTLExpiry(t *testing.T) {
	e := newTestEngine(t, Config{ExactTTL: 10 * time.Minute, SemanticTTL: 30 * time.Minute})
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	e.Store(ctx, "cuanto cuesta la evaluacion apex", "apex", "respuesta")

	t.Run("live before exact TTL", func(t *testing.T) {
		e.now = func() time.Time { return base.Add(9 * time.Minute) }
		if hit, ok := e.Lookup(ctx, "cuanto cuesta la evaluacion apex", "apex"); !ok || hit.Tier != TierExact {
			t.Errorf("expected live exact entry, ok=%v hit=%+v", ok, hit)
		}
	})

	t.Run("exact expired, semantic still live", func(t *testing.T) {
		e.now = func() time.Time { return base.Add(11 * time.Minute) }
		hit, ok := e.Lookup(ctx, "cuanto cuesta la evaluacion apex", "apex")
		if !ok {
			t.Fatal("expected semantic hit after exact expiry")
		}
		if hit.Tier != TierSemantic {
			t.Errorf("expected semantic tier, got %s", hit.Tier)
		}
	})

	t.Run("both expired", func(t *testing.T) {
		e.now = func() time.Time { return base.Add(31 * time.Minute) }
		if _, ok := e.Lookup(ctx, "cuanto cuesta la evaluacion apex", "apex"); ok {
			t.Error("expected miss after both TTLs")
		}
	})
}

func TestSweep(t *testing.T) {
	e := newTestEngine(t, Config{ExactTTL: time.Minute, SemanticTTL: time.Minute})
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	e.Store(ctx, "pregunta uno", "", "r1")
	e.Store(ctx, "pregunta dos", "", "r2")

	e.now = func() time.Time { return base.Add(2 * time.Minute) }
	removed := e.sweep()
	if removed != 4 { // 2 exact + 2 semantic
		t.Errorf("expected 4 removals, got %d", removed)
	}

	m := e.Snapshot()
	if m.ExactEntries != 0 || m.SemanticEntries != 0 {
		t.Errorf("expected empty volatile tiers, got %+v", m)
	}
	if m.PrecomputedEntries == 0 {
		t.Error("sweep must not touch precomputed tier")
	}
}

func TestClearAll(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Store(ctx, "cuanto cuesta apex", "apex", "respuesta")
	e.ClearAll()

	if _, ok := e.Lookup(ctx, "cuanto cuesta apex", "apex"); ok {
		t.Error("expected miss after ClearAll")
	}

	// Precomputed answers survive.
	if hit, ok := e.Lookup(ctx, "que es una prop firm", ""); !ok || hit.Tier != TierPrecomputed {
		t.Errorf("precomputed tier must survive ClearAll, ok=%v hit=%+v", ok, hit)
	}
}

func TestStore_PrecomputedFirstWriteWins(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	// The seed already filled "que es una prop firm"; a later store for a
	// matching question must not overwrite it.
	seeded, ok := e.Lookup(ctx, "que es una prop firm", "")
	if !ok {
		t.Fatal("expected seeded answer")
	}

	e.Store(ctx, "explicame que es una prop firm por favor", "", "otra respuesta")
	e.ClearAll() // drop the L1/L2 copies so L3 answers again

	after, ok := e.Lookup(ctx, "que es una prop firm", "")
	if !ok {
		t.Fatal("expected precomputed hit")
	}
	if after.Response != seeded.Response {
		t.Error("precomputed entry must be first-write-wins")
	}
}

func TestMetrics(t *testing.T) {
	e := newTestEngine(t, Config{})
	ctx := context.Background()

	e.Lookup(ctx, "pregunta sin respuesta cacheada", "") // miss
	e.Store(ctx, "cuanto cuesta apex", "apex", "respuesta")
	e.Lookup(ctx, "cuanto cuesta apex", "apex") // exact hit
	e.Lookup(ctx, "que es una prop firm", "")   // precomputed hit

	m := e.Snapshot()
	if m.TotalQueries != 3 {
		t.Errorf("expected 3 queries, got %d", m.TotalQueries)
	}
	if m.Misses != 1 || m.ExactHits != 1 || m.PrecomputedHits != 1 {
		t.Errorf("unexpected counters: %+v", m)
	}
	if got := m.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("expected hit rate ~2/3, got %.3f", got)
	}

	e.ObserveLatency(100 * time.Millisecond)
	e.ObserveLatency(200 * time.Millisecond)
	if avg := e.Snapshot().AvgResponseMs; avg != 150 {
		t.Errorf("expected incremental mean 150ms, got %.1f", avg)
	}
}

func TestStart_SweepStopsOnCancel(t *testing.T) {
	e := newTestEngine(t, Config{SweepInterval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }
	e.Store(ctx, "pregunta", "", "respuesta")

	e.now = func() time.Time { return base.Add(time.Hour) }
	e.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if m := e.Snapshot(); m.ExactEntries == 0 && m.SemanticEntries == 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	m := e.Snapshot()
	if m.ExactEntries != 0 || m.SemanticEntries != 0 {
		t.Errorf("sweep never ran: %+v", m)
	}

	cancel()
}
