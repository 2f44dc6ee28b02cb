package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, Post ,HEAD,,")
	for _, want := range []string{"GET", "POST", "HEAD"} {
		if !m[want] {
			t.Errorf("%s missing from parsed set", want)
		}
	}
	if len(m) != 3 {
		t.Errorf("set size = %d, want 3", len(m))
	}
}

func TestParseDurFallsBack(t *testing.T) {
	if d := parseDur("90s"); d != 90*time.Second {
		t.Errorf("parseDur(90s) = %v", d)
	}
	if d := parseDur("nonsense"); d != time.Second {
		t.Errorf("bad input must fall back to 1s, got %v", d)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "hello")
	if v := envStr("CFG_TEST_STR", "def"); v != "hello" {
		t.Errorf("envStr = %q", v)
	}
	if v := envStr("CFG_TEST_MISSING", "def"); v != "def" {
		t.Errorf("envStr default = %q", v)
	}

	t.Setenv("CFG_TEST_BOOL", "yes")
	if !envBool("CFG_TEST_BOOL", false) {
		t.Error("envBool should accept yes")
	}
	t.Setenv("CFG_TEST_BOOL", "off")
	if envBool("CFG_TEST_BOOL", true) {
		t.Error("envBool should accept off")
	}
	t.Setenv("CFG_TEST_BOOL", "maybe")
	if !envBool("CFG_TEST_BOOL", true) {
		t.Error("unknown value must fall back to the default")
	}

	t.Setenv("CFG_TEST_INT", "17")
	if v := envInt("CFG_TEST_INT", 3); v != 17 {
		t.Errorf("envInt = %d", v)
	}
	t.Setenv("CFG_TEST_DUR", "250ms")
	if v := envDur("CFG_TEST_DUR", time.Second); v != 250*time.Millisecond {
		t.Errorf("envDur = %v", v)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity < 1 || cfg.RefillTokens < 1 {
		t.Errorf("capacity/refill must clamp to >=1, got %d/%d", cfg.Capacity, cfg.RefillTokens)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL %v must be at least five refill intervals (%v)", cfg.TTL, cfg.RefillInterval)
	}
}
