package services

import (
	"testing"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

func claim(collaboratorID, moduleID string, level entities.SkillLevel) *entities.SkillClaim {
	return &entities.SkillClaim{CollaboratorID: collaboratorID, ModuleID: moduleID, CurrentLevel: level}
}

func assessment(collaboratorID, moduleID string, level entities.SkillLevel) *entities.ManagerAssessment {
	return &entities.ManagerAssessment{CollaboratorID: collaboratorID, ModuleID: moduleID, TargetLevel: level}
}

func TestComputeAverageGap(t *testing.T) {
	t.Run("considera apenas pares completos", func(t *testing.T) {
		claims := []*entities.SkillClaim{
			claim("c1", "m1", entities.LevelAtende),
			claim("c1", "m2", entities.LevelNaoAtende),
			claim("c2", "m1", entities.LevelEspecialista),
		}
		assessments := []*entities.ManagerAssessment{
			assessment("c1", "m1", entities.LevelEspecialista),
			assessment("c1", "m2", entities.LevelAtende),
			assessment("c2", "m3", entities.LevelAtende),
		}

		// pares completos: (c1,m1) gap 2 e (c1,m2) gap 1
		got := ComputeAverageGap(claims, assessments)
		if got != 1.5 {
			t.Errorf("ComputeAverageGap = %v, esperava 1.5", got)
		}
	})

	t.Run("nenhum par completo resulta em zero", func(t *testing.T) {
		claims := []*entities.SkillClaim{claim("c1", "m1", entities.LevelAtende)}
		assessments := []*entities.ManagerAssessment{assessment("c2", "m2", entities.LevelAtende)}

		if got := ComputeAverageGap(claims, assessments); got != 0 {
			t.Errorf("ComputeAverageGap = %v, esperava 0", got)
		}
	})

	t.Run("arredonda para duas casas", func(t *testing.T) {
		claims := []*entities.SkillClaim{
			claim("c1", "m1", entities.LevelNaoAtende),
			claim("c2", "m1", entities.LevelNaoAtende),
			claim("c3", "m1", entities.LevelAtende),
		}
		assessments := []*entities.ManagerAssessment{
			assessment("c1", "m1", entities.LevelAtende),
			assessment("c2", "m1", entities.LevelAtende),
			assessment("c3", "m1", entities.LevelAtende),
		}

		// (1 + 1 + 0) / 3 = 0.666...
		if got := ComputeAverageGap(claims, assessments); got != 0.67 {
			t.Errorf("ComputeAverageGap = %v, esperava 0.67", got)
		}
	})
}

func TestComputeLevelDistribution(t *testing.T) {
	claims := []*entities.SkillClaim{
		claim("c1", "m1", entities.LevelAtende),
		claim("c2", "m1", entities.LevelAtende),
		claim("c1", "m2", entities.LevelEspecialista),
	}

	distribution := ComputeLevelDistribution(claims)

	if len(distribution) != 4 {
		t.Fatalf("len(distribution) = %d, esperava os quatro níveis", len(distribution))
	}
	counts := map[entities.SkillLevel]int{}
	for _, item := range distribution {
		counts[item.Level] = item.Count
	}
	if counts[entities.LevelNaoAtende] != 0 {
		t.Error("nível sem entradas deveria aparecer com zero")
	}
	if counts[entities.LevelAtende] != 2 || counts[entities.LevelEspecialista] != 1 {
		t.Errorf("contagens = %v", counts)
	}
	if distribution[0].Level != entities.LevelNaoAtende {
		t.Errorf("primeiro nível = %s, esperava a ordem canônica", distribution[0].Level)
	}
}

func TestComputeModuleGaps(t *testing.T) {
	modules := []*entities.ModuleRoutine{
		{ID: "m1", Code: "FOLHA_CALCULOS", Description: "Folha de Pagamento"},
		{ID: "m2", Code: "PONTO_CONTROLE", Description: "Controle de Ponto"},
	}
	claims := []*entities.SkillClaim{
		claim("c1", "m1", entities.LevelNaoAtende),
		claim("c2", "m1", entities.LevelAtende),
	}
	assessments := []*entities.ManagerAssessment{
		assessment("c1", "m1", entities.LevelEspecialista),
		assessment("c1", "m2", entities.LevelAtende),
	}

	gaps := ComputeModuleGaps(modules, claims, assessments)

	if len(gaps) != 2 {
		t.Fatalf("len(gaps) = %d", len(gaps))
	}

	t.Run("média das avaliações menos média das autoavaliações", func(t *testing.T) {
		// alvo 3, atual (0 + 1) / 2 = 0.5
		if gaps[0].Gap == nil || *gaps[0].Gap != 2.5 {
			t.Errorf("gap = %v, esperava 2.5", gaps[0].Gap)
		}
	})

	t.Run("módulo sem autoavaliações tem lacuna nula", func(t *testing.T) {
		if gaps[1].Gap != nil {
			t.Errorf("gap = %v, esperava nulo", *gaps[1].Gap)
		}
	})
}

func TestTopGaps(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	gaps := []ModuleGap{
		{Code: "A", Gap: value(1)},
		{Code: "B", Gap: nil},
		{Code: "C", Gap: value(3)},
		{Code: "D", Gap: value(2)},
		{Code: "E", Gap: value(3)},
		{Code: "F", Gap: value(0.5)},
		{Code: "G", Gap: value(2.5)},
	}

	top := TopGaps(gaps, 5)

	if len(top) != 5 {
		t.Fatalf("len(top) = %d, esperava 5", len(top))
	}

	codes := make([]string, 0, len(top))
	for _, item := range top {
		codes = append(codes, item.Code)
	}

	// empate entre C e E preserva a ordem de entrada
	want := []string{"C", "E", "G", "D", "A"}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("ordem = %v, esperava %v", codes, want)
		}
	}
}
