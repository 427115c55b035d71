package repositories

import "testing"

func TestNewPageMeta(t *testing.T) {
	t.Run("totalPages arredonda para cima", func(t *testing.T) {
		meta := NewPageMeta(2, 20, 35)

		if meta.Total != 35 {
			t.Errorf("Total = %d, esperava 35", meta.Total)
		}
		if meta.TotalPages != 2 {
			t.Errorf("TotalPages = %d, esperava 2", meta.TotalPages)
		}
	})

	t.Run("total zero produz zero páginas", func(t *testing.T) {
		meta := NewPageMeta(1, 20, 0)
		if meta.TotalPages != 0 {
			t.Errorf("TotalPages = %d, esperava 0", meta.TotalPages)
		}
	})

	t.Run("total múltiplo exato de perPage", func(t *testing.T) {
		meta := NewPageMeta(1, 20, 40)
		if meta.TotalPages != 2 {
			t.Errorf("TotalPages = %d, esperava 2", meta.TotalPages)
		}
	})
}

func TestNormalizePage(t *testing.T) {
	t.Run("aplica defaults", func(t *testing.T) {
		page, perPage := NormalizePage(0, 0)
		if page != 1 || perPage != 20 {
			t.Fatalf("NormalizePage(0, 0) = (%d, %d), esperava (1, 20)", page, perPage)
		}
	})

	t.Run("limita perPage a 100", func(t *testing.T) {
		_, perPage := NormalizePage(1, 500)
		if perPage != 100 {
			t.Fatalf("perPage = %d, esperava 100", perPage)
		}
	})

	t.Run("mantém valores válidos", func(t *testing.T) {
		page, perPage := NormalizePage(3, 50)
		if page != 3 || perPage != 50 {
			t.Fatalf("NormalizePage(3, 50) = (%d, %d)", page, perPage)
		}
	})
}

func TestOptional(t *testing.T) {
	t.Run("ausente não está definido", func(t *testing.T) {
		var field Optional[string]
		if field.IsSet() {
			t.Fatal("campo ausente não deveria estar definido")
		}
	})

	t.Run("nulo está definido sem valor", func(t *testing.T) {
		field := Null[string]()
		if !field.IsSet() {
			t.Fatal("campo nulo deveria estar definido")
		}
		if _, ok := field.Get(); ok {
			t.Fatal("campo nulo não deveria ter valor")
		}
	})

	t.Run("valor definido", func(t *testing.T) {
		field := Some("texto")
		value, ok := field.Get()
		if !ok || value != "texto" {
			t.Fatalf("Get() = (%q, %v), esperava (texto, true)", value, ok)
		}
	})
}
