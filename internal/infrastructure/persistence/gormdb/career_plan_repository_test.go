package gormdb

import (
	"context"
	"testing"
	"time"

	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

func TestCareerPlanCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerPlanRepository(db)
	ctx := context.Background()

	collaborator := createTestCollaborator(t, db, "Ana Silva")
	folha := createTestModule(t, db, "FOLHA_CALCULOS", "Folha de Pagamento")
	ponto := createTestModule(t, db, "PONTO_CONTROLE", "Controle de Ponto")

	t.Run("cria o plano com vínculos ordenados por código", func(t *testing.T) {
		due := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		plan, err := repo.Create(ctx, repositories.CareerPlanInput{
			CollaboratorID: collaborator.ID,
			Objectives:     "Dominar a folha até o fim do semestre",
			DueDate:        &due,
			ModuleIDs:      []string{ponto.ID, folha.ID},
		})
		if err != nil {
			t.Fatal(err)
		}

		if len(plan.Modules) != 2 {
			t.Fatalf("len(Modules) = %d, esperava 2", len(plan.Modules))
		}
		if plan.Modules[0].Module.Code != "FOLHA_CALCULOS" {
			t.Errorf("primeiro vínculo = %s, esperava FOLHA_CALCULOS", plan.Modules[0].Module.Code)
		}
		if plan.DueDate == nil || !plan.DueDate.Equal(due) {
			t.Errorf("dueDate = %v, esperava %v", plan.DueDate, due)
		}
	})

	t.Run("IDs repetidos na entrada são deduplicados", func(t *testing.T) {
		plan, err := repo.Create(ctx, repositories.CareerPlanInput{
			CollaboratorID: collaborator.ID,
			Objectives:     "Plano com duplicatas",
			ModuleIDs:      []string{folha.ID, folha.ID, ""},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(plan.Modules) != 1 {
			t.Fatalf("len(Modules) = %d, esperava 1", len(plan.Modules))
		}
	})
}

func TestCareerPlanUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerPlanRepository(db)
	ctx := context.Background()

	collaborator := createTestCollaborator(t, db, "Bruno Costa")
	folha := createTestModule(t, db, "FOLHA_CALCULOS", "Folha de Pagamento")
	ponto := createTestModule(t, db, "PONTO_CONTROLE", "Controle de Ponto")
	treinamento := createTestModule(t, db, "TREINAMENTO_GESTAO", "Gestao de Treinamentos")

	notes := "acompanhamento mensal"
	plan, err := repo.Create(ctx, repositories.CareerPlanInput{
		CollaboratorID: collaborator.ID,
		Objectives:     "Objetivos iniciais",
		Notes:          &notes,
		ModuleIDs:      []string{folha.ID, ponto.ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ModuleIDs presente substitui integralmente os vínculos", func(t *testing.T) {
		updated, err := repo.Update(ctx, plan.ID, repositories.UpdateCareerPlanInput{
			ModuleIDs: repositories.Some([]string{ponto.ID, treinamento.ID}),
		})
		if err != nil {
			t.Fatal(err)
		}

		if len(updated.Modules) != 2 {
			t.Fatalf("len(Modules) = %d, esperava 2", len(updated.Modules))
		}
		codes := []string{updated.Modules[0].Module.Code, updated.Modules[1].Module.Code}
		if codes[0] != "PONTO_CONTROLE" || codes[1] != "TREINAMENTO_GESTAO" {
			t.Errorf("vínculos = %v", codes)
		}
	})

	t.Run("ModuleIDs ausente mantém os vínculos existentes", func(t *testing.T) {
		objectives := "Objetivos revisados"
		updated, err := repo.Update(ctx, plan.ID, repositories.UpdateCareerPlanInput{
			Objectives: repositories.Some(objectives),
		})
		if err != nil {
			t.Fatal(err)
		}

		if updated.Objectives != objectives {
			t.Errorf("objetivos = %s", updated.Objectives)
		}
		if len(updated.Modules) != 2 {
			t.Errorf("vínculos não deveriam ter sido tocados, obteve %d", len(updated.Modules))
		}
		if updated.Notes == nil || *updated.Notes != notes {
			t.Error("notas não deveriam ter sido alteradas")
		}
	})

	t.Run("null explícito limpa dueDate e notas", func(t *testing.T) {
		updated, err := repo.Update(ctx, plan.ID, repositories.UpdateCareerPlanInput{
			DueDate: repositories.Null[time.Time](),
			Notes:   repositories.Null[string](),
		})
		if err != nil {
			t.Fatal(err)
		}

		if updated.DueDate != nil {
			t.Errorf("dueDate = %v, esperava nulo", updated.DueDate)
		}
		if updated.Notes != nil {
			t.Errorf("notas = %q, esperava nulas", *updated.Notes)
		}
	})
}

func TestCareerPlanDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerPlanRepository(db)
	ctx := context.Background()

	collaborator := createTestCollaborator(t, db, "Carla Dias")
	module := createTestModule(t, db, "FOLHA_CALCULOS", "Folha de Pagamento")

	plan, err := repo.Create(ctx, repositories.CareerPlanInput{
		CollaboratorID: collaborator.ID,
		Objectives:     "Plano temporário",
		ModuleIDs:      []string{module.ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, plan.ID); err != nil {
		t.Fatal(err)
	}

	found, err := repo.FindByID(ctx, plan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Error("plano removido não deveria ser encontrado")
	}

	var links int64
	if err := db.Model(&CareerPlanModuleModel{}).Where("career_plan_id = ?", plan.ID).Count(&links).Error; err != nil {
		t.Fatal(err)
	}
	if links != 0 {
		t.Errorf("esperava 0 vínculos remanescentes, obteve %d", links)
	}
}

func TestCareerPlanListByCollaborator(t *testing.T) {
	db := newTestDB(t)
	repo := NewCareerPlanRepository(db)
	ctx := context.Background()

	first := createTestCollaborator(t, db, "Ana Silva")
	second := createTestCollaborator(t, db, "Bruno Costa")

	for _, collaboratorID := range []string{first.ID, first.ID, second.ID} {
		if _, err := repo.Create(ctx, repositories.CareerPlanInput{
			CollaboratorID: collaboratorID,
			Objectives:     "Objetivos",
		}); err != nil {
			t.Fatal(err)
		}
	}

	plans, err := repo.List(ctx, repositories.CareerPlanListParams{CollaboratorID: first.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 2 {
		t.Errorf("len(plans) = %d, esperava 2", len(plans))
	}

	all, err := repo.List(ctx, repositories.CareerPlanListParams{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, esperava 3", len(all))
	}
}
