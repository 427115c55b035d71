package gormdb

import (
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	t.Run("ISO UTC é idempotente", func(t *testing.T) {
		got := NormalizeTimestamp("2024-01-15T10:00:00.000Z")
		want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("NormalizeTimestamp = %v, esperava %v", got, want)
		}
	})

	t.Run("timestamp ingênuo é tratado como UTC", func(t *testing.T) {
		got := NormalizeTimestamp("2024-01-15 10:00:00")
		want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("NormalizeTimestamp = %v, esperava %v", got, want)
		}
	})

	t.Run("offset explícito é convertido para UTC", func(t *testing.T) {
		got := NormalizeTimestamp("2024-01-15T07:00:00+03:00")
		want := time.Date(2024, 1, 15, 4, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("NormalizeTimestamp = %v, esperava %v", got, want)
		}
	})

	t.Run("data pura", func(t *testing.T) {
		got := NormalizeTimestamp("2024-01-15")
		want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("NormalizeTimestamp = %v, esperava %v", got, want)
		}
	})

	t.Run("entrada inválida nunca falha", func(t *testing.T) {
		before := time.Now().UTC()
		got := NormalizeTimestamp("não é uma data")
		if got.Before(before.Add(-time.Second)) {
			t.Fatalf("fallback deveria ser o instante atual, obteve %v", got)
		}
	})
}

func TestParseBool(t *testing.T) {
	truthy := []any{true, 1, int64(1), float64(1), "1", "true", "TRUE", []byte("true")}
	for _, value := range truthy {
		if !ParseBool(value) {
			t.Errorf("ParseBool(%v) deveria ser true", value)
		}
	}

	falsy := []any{false, 0, int64(0), "0", "false", "sim", nil, 2}
	for _, value := range falsy {
		if ParseBool(value) {
			t.Errorf("ParseBool(%v) deveria ser false", value)
		}
	}
}

func TestParseStringArray(t *testing.T) {
	t.Run("JSON válido", func(t *testing.T) {
		got := ParseStringArray(`["folha", " ponto "]`)
		if len(got) != 2 || got[0] != "folha" || got[1] != "ponto" {
			t.Fatalf("ParseStringArray = %v", got)
		}
	})

	t.Run("filtra entradas não textuais", func(t *testing.T) {
		got := ParseStringArray([]any{"a", 1, true, "b"})
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Fatalf("ParseStringArray = %v", got)
		}
	})

	t.Run("JSON malformado resulta em lista vazia", func(t *testing.T) {
		got := ParseStringArray("{quebrado")
		if len(got) != 0 {
			t.Fatalf("ParseStringArray = %v, esperava vazio", got)
		}
	})
}

func TestStringifyList(t *testing.T) {
	t.Run("nil resulta em nil, nunca no texto null", func(t *testing.T) {
		if got := StringifyList(nil); got != nil {
			t.Fatalf("StringifyList(nil) = %q, esperava nil", *got)
		}
	})

	t.Run("lista vazia serializa como colchetes", func(t *testing.T) {
		got := StringifyList([]string{})
		if got == nil || *got != "[]" {
			t.Fatalf("StringifyList([]) = %v, esperava []", got)
		}
	})
}

func TestTimestampScan(t *testing.T) {
	t.Run("aceita texto ingênuo do banco", func(t *testing.T) {
		var ts Timestamp
		if err := ts.Scan("2024-01-15 10:00:00"); err != nil {
			t.Fatal(err)
		}
		want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		if !ts.Time().Equal(want) {
			t.Fatalf("Scan = %v, esperava %v", ts.Time(), want)
		}
	})

	t.Run("aceita time.Time", func(t *testing.T) {
		var ts Timestamp
		instant := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		if err := ts.Scan(instant); err != nil {
			t.Fatal(err)
		}
		if !ts.Time().Equal(instant) {
			t.Fatalf("Scan = %v, esperava %v", ts.Time(), instant)
		}
	})
}
