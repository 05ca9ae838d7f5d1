package config

import (
	"testing"
	"time"

	kit "soda/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want CORE_API_PORT", got)
	}
	if got := api.Prefix("LOG_").key("LEVEL"); got != "CORE_API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("SODA_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("SODA_HOST", " data.smgov.net ")
	if got := c.MayString("HOST", "x"); got != "data.smgov.net" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("SODA_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("SODA_MAX_BODY_BYTES", " 1024 ")
	if got := c.MayInt("MAX_BODY_BYTES", 0); got != 1024 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("SODA_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("CORE_API_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("CORE_API_SWAGGER", "false")
	if c.MayBool("SWAGGER", true) {
		t.Fatalf("MayBool false expected")
	}
	t.Setenv("CORE_API_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("SODA_")
	if got := c.MayDuration("MISSING", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("SODA_TIMEOUT", "150ms")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("SODA_BAD", "soon")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
	t.Setenv("SODA_NEG", "-1s")
	if got := c.MayDuration("NEG", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration negative = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"*"}
	if got := c.MayCSV("MISSING", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %#v", got)
	}

	t.Setenv("CORE_API_CORS_ORIGINS", " https://a.org, https://b.org , ,")
	got := c.MayCSV("CORS_ORIGINS", nil)
	want := []string{"https://a.org", "https://b.org"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CORE_API_BLANK", " , ,")
	if got := c.MayCSV("BLANK", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV all blank = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("SODA_")
	if got := c.MayEnum("MISSING", "us", "us", "eu"); got != "us" {
		t.Fatalf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("MISSING", "", "us", "eu"); got != "" {
		t.Fatalf("MayEnum empty default = %q", got)
	}
	t.Setenv("SODA_LOCATION", "EU")
	if got := c.MayEnum("LOCATION", "us", "us", "eu"); got != "EU" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("SODA_BAD", "mars")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "us", "us", "eu") })
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("CORE_API_")
	if got := c.MayPort("MISSING", ":4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("CORE_API_PORT", "8080")
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort bare = %q", got)
	}
	t.Setenv("CORE_API_ADDR", "127.0.0.1:9000")
	if got := c.MayPort("ADDR", ":4000"); got != "127.0.0.1:9000" {
		t.Fatalf("MayPort host:port = %q", got)
	}
	t.Setenv("CORE_API_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MayPort("BAD", ":4000") })
	t.Setenv("CORE_API_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("OOB", ":4000") })
}
