package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

func TestModuleList(t *testing.T) {
	db := newTestDB(t)
	repo := NewModuleRepository(db)
	ctx := context.Background()

	for i := 0; i < 35; i++ {
		createTestModule(t, db, fmt.Sprintf("MOD_%02d", i), fmt.Sprintf("Rotina %02d", i))
	}

	t.Run("página 2 de 20 sobre 35 linhas retorna 15", func(t *testing.T) {
		result, err := repo.List(ctx, repositories.ModuleListParams{Page: 2, PerPage: 20})
		if err != nil {
			t.Fatal(err)
		}

		if len(result.Data) != 15 {
			t.Errorf("len(Data) = %d, esperava 15", len(result.Data))
		}
		if result.Total != 35 {
			t.Errorf("Total = %d, esperava 35", result.Total)
		}

		meta := repositories.NewPageMeta(2, 20, result.Total)
		if meta.TotalPages != 2 {
			t.Errorf("TotalPages = %d, esperava 2", meta.TotalPages)
		}
	})

	t.Run("filtro por código parcial", func(t *testing.T) {
		result, err := repo.List(ctx, repositories.ModuleListParams{CodeContains: "mod_0"})
		if err != nil {
			t.Fatal(err)
		}
		if result.Total != 10 {
			t.Errorf("Total = %d, esperava 10", result.Total)
		}
	})

	t.Run("filtro por códigos exatos sem diferenciar maiúsculas", func(t *testing.T) {
		result, err := repo.List(ctx, repositories.ModuleListParams{
			CodeExact: []string{"mod_01", "MOD_02"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, esperava 2", result.Total)
		}
	})
}

func TestModuleUpsertByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewModuleRepository(db)
	ctx := context.Background()

	t.Run("cria quando o código não existe", func(t *testing.T) {
		module, err := repo.UpsertByCode(ctx, repositories.ModuleInput{
			Code:        "folha_calculos",
			Description: "Folha de Pagamento",
		})
		if err != nil {
			t.Fatal(err)
		}
		if module.Code != "FOLHA_CALCULOS" {
			t.Errorf("código = %s, esperava normalizado FOLHA_CALCULOS", module.Code)
		}
	})

	t.Run("atualiza quando o código já existe, ignorando caixa", func(t *testing.T) {
		module, err := repo.UpsertByCode(ctx, repositories.ModuleInput{
			Code:        "  Folha_Calculos  ",
			Description: "Folha de Pagamento - Calculos",
		})
		if err != nil {
			t.Fatal(err)
		}
		if module.Description != "Folha de Pagamento - Calculos" {
			t.Errorf("descrição = %s", module.Description)
		}

		total, err := repo.Count(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if total != 1 {
			t.Errorf("esperava 1 módulo, obteve %d", total)
		}
	})
}

func TestModuleFindByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewModuleRepository(db)
	ctx := context.Background()

	createTestModule(t, db, "PONTO_CONTROLE", "Controle de Ponto")

	module, err := repo.FindByCode(ctx, "ponto_controle")
	if err != nil {
		t.Fatal(err)
	}
	if module == nil {
		t.Fatal("busca por código deveria ignorar maiúsculas")
	}

	missing, err := repo.FindByCode(ctx, "INEXISTENTE")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("código inexistente deveria retornar nil sem erro")
	}
}
