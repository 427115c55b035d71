package entities

// SkillLevel representa o nível de proficiência em um módulo.
// Os valores literais são contrato de wire: o frontend consome e o
// banco persiste exatamente estas strings.
type SkillLevel string

const (
	LevelNaoAtende       SkillLevel = "NAO_ATENDE"
	LevelAtende          SkillLevel = "ATENDE"
	LevelImplantaSozinho SkillLevel = "IMPLANTA_SOZINHO"
	LevelEspecialista    SkillLevel = "ESPECIALISTA"
)

// skillLevelScore fixa a ordem total entre os níveis
var skillLevelScore = map[SkillLevel]int{
	LevelNaoAtende:       0,
	LevelAtende:          1,
	LevelImplantaSozinho: 2,
	LevelEspecialista:    3,
}

// SkillLevels retorna os níveis na ordem crescente de proficiência
func SkillLevels() []SkillLevel {
	return []SkillLevel{
		LevelNaoAtende,
		LevelAtende,
		LevelImplantaSozinho,
		LevelEspecialista,
	}
}

// Score retorna a pontuação ordinal do nível
func (l SkillLevel) Score() int {
	return skillLevelScore[l]
}

// IsValid verifica se o nível é um dos valores conhecidos
func (l SkillLevel) IsValid() bool {
	_, ok := skillLevelScore[l]
	return ok
}

// Gap calcula a lacuna entre o nível alvo e o nível atual.
// Positivo significa abaixo do alvo; negativo, acima.
func Gap(target, current SkillLevel) int {
	return target.Score() - current.Score()
}
