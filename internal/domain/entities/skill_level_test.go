package entities

import "testing"

func TestSkillLevelScore(t *testing.T) {
	t.Run("ordem total dos níveis", func(t *testing.T) {
		levels := SkillLevels()
		for i := 1; i < len(levels); i++ {
			if levels[i-1].Score() >= levels[i].Score() {
				t.Fatalf("esperava %s < %s", levels[i-1], levels[i])
			}
		}
	})

	t.Run("pontuações fixas", func(t *testing.T) {
		cases := map[SkillLevel]int{
			LevelNaoAtende:       0,
			LevelAtende:          1,
			LevelImplantaSozinho: 2,
			LevelEspecialista:    3,
		}
		for level, want := range cases {
			if got := level.Score(); got != want {
				t.Errorf("Score(%s) = %d, esperava %d", level, got, want)
			}
		}
	})
}

func TestGap(t *testing.T) {
	t.Run("alvo especialista e atual não atende", func(t *testing.T) {
		if got := Gap(LevelEspecialista, LevelNaoAtende); got != 3 {
			t.Fatalf("gap = %d, esperava 3", got)
		}
	})

	t.Run("gap negativo quando acima do alvo", func(t *testing.T) {
		if got := Gap(LevelAtende, LevelEspecialista); got != -2 {
			t.Fatalf("gap = %d, esperava -2", got)
		}
	})
}

func TestSkillLevelIsValid(t *testing.T) {
	for _, level := range SkillLevels() {
		if !level.IsValid() {
			t.Errorf("%s deveria ser válido", level)
		}
	}

	if SkillLevel("AVANCADO").IsValid() {
		t.Error("nível desconhecido não deveria ser válido")
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleMaster.IsValid() || !RoleColaborador.IsValid() {
		t.Error("roles conhecidos deveriam ser válidos")
	}
	if Role("ADMIN").IsValid() {
		t.Error("role desconhecido não deveria ser válido")
	}
}
