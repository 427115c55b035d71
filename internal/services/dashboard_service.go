package services

import (
	"context"
	"math"
	"sort"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// DashboardService agrega KPIs e tendências da matriz de habilidades
type DashboardService struct {
	collaboratorRepo repositories.CollaboratorRepository
	moduleRepo       repositories.ModuleRepository
	claimRepo        repositories.SkillClaimRepository
	assessmentRepo   repositories.AssessmentRepository
	logger           ports.Logger
}

// NewDashboardService cria um novo DashboardService
func NewDashboardService(
	collaboratorRepo repositories.CollaboratorRepository,
	moduleRepo repositories.ModuleRepository,
	claimRepo repositories.SkillClaimRepository,
	assessmentRepo repositories.AssessmentRepository,
	logger ports.Logger,
) *DashboardService {
	return &DashboardService{
		collaboratorRepo: collaboratorRepo,
		moduleRepo:       moduleRepo,
		claimRepo:        claimRepo,
		assessmentRepo:   assessmentRepo,
		logger:           logger,
	}
}

// DashboardKPIs são os contadores gerais do painel
type DashboardKPIs struct {
	Collaborators int64   `json:"collaborators"`
	Modules       int64   `json:"modules"`
	SkillClaims   int64   `json:"skillClaims"`
	Assessments   int64   `json:"assessments"`
	AvgGap        float64 `json:"avgGap"`
}

// LevelCount é a contagem de autoavaliações em um nível
type LevelCount struct {
	Level entities.SkillLevel `json:"level"`
	Count int                 `json:"count"`
}

// ModuleGap é a lacuna média de um módulo. Gap é nulo quando o módulo
// não tem autoavaliações ou não tem avaliações do gestor.
type ModuleGap struct {
	ModuleID    string   `json:"moduleId"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Gap         *float64 `json:"gap"`
}

// DashboardTrends são as séries agregadas do painel
type DashboardTrends struct {
	LevelDistribution []LevelCount `json:"levelDistribution"`
	ModuleGaps        []ModuleGap  `json:"moduleGaps"`
	TopGaps           []ModuleGap  `json:"topGaps"`
}

// KPIs calcula os contadores gerais e a lacuna média sobre os pares
// (colaborador, módulo) completos
func (s *DashboardService) KPIs(ctx context.Context) (*DashboardKPIs, error) {
	collaborators, err := s.collaboratorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	modules, err := s.moduleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.claimRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardKPIs{
		Collaborators: collaborators,
		Modules:       modules,
		SkillClaims:   int64(len(claims)),
		Assessments:   int64(len(assessments)),
		AvgGap:        ComputeAverageGap(claims, assessments),
	}, nil
}

// Trends calcula a distribuição de níveis, a lacuna média por módulo e
// os cinco módulos com maior lacuna
func (s *DashboardService) Trends(ctx context.Context) (*DashboardTrends, error) {
	modules, err := s.moduleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.claimRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	moduleGaps := ComputeModuleGaps(modules, claims, assessments)

	return &DashboardTrends{
		LevelDistribution: ComputeLevelDistribution(claims),
		ModuleGaps:        moduleGaps,
		TopGaps:           TopGaps(moduleGaps, 5),
	}, nil
}

type pairKey struct {
	collaboratorID string
	moduleID       string
}

// ComputeAverageGap calcula a lacuna média sobre os pares que têm
// tanto autoavaliação quanto avaliação do gestor, arredondada para
// duas casas. Retorna 0 quando nenhum par está completo.
func ComputeAverageGap(claims []*entities.SkillClaim, assessments []*entities.ManagerAssessment) float64 {
	currentByPair := make(map[pairKey]entities.SkillLevel, len(claims))
	for _, claim := range claims {
		currentByPair[pairKey{claim.CollaboratorID, claim.ModuleID}] = claim.CurrentLevel
	}

	sum := 0
	pairs := 0
	for _, assessment := range assessments {
		current, ok := currentByPair[pairKey{assessment.CollaboratorID, assessment.ModuleID}]
		if !ok {
			continue
		}
		sum += entities.Gap(assessment.TargetLevel, current)
		pairs++
	}

	if pairs == 0 {
		return 0
	}
	return round2(float64(sum) / float64(pairs))
}

// ComputeLevelDistribution conta autoavaliações por nível, com zeros
// para níveis ausentes
func ComputeLevelDistribution(claims []*entities.SkillClaim) []LevelCount {
	counts := make(map[entities.SkillLevel]int, 4)
	for _, claim := range claims {
		counts[claim.CurrentLevel]++
	}

	out := make([]LevelCount, 0, 4)
	for _, level := range entities.SkillLevels() {
		out = append(out, LevelCount{Level: level, Count: counts[level]})
	}
	return out
}

// ComputeModuleGaps calcula, por módulo, a média das pontuações das
// avaliações menos a média das pontuações das autoavaliações. Nulo
// quando qualquer um dos lados não tem entradas. A ordem de saída
// segue a ordem dos módulos de entrada.
func ComputeModuleGaps(modules []*entities.ModuleRoutine, claims []*entities.SkillClaim, assessments []*entities.ManagerAssessment) []ModuleGap {
	claimSum := make(map[string]int)
	claimCount := make(map[string]int)
	for _, claim := range claims {
		claimSum[claim.ModuleID] += claim.CurrentLevel.Score()
		claimCount[claim.ModuleID]++
	}

	assessmentSum := make(map[string]int)
	assessmentCount := make(map[string]int)
	for _, assessment := range assessments {
		assessmentSum[assessment.ModuleID] += assessment.TargetLevel.Score()
		assessmentCount[assessment.ModuleID]++
	}

	out := make([]ModuleGap, 0, len(modules))
	for _, module := range modules {
		gap := ModuleGap{
			ModuleID:    module.ID,
			Code:        module.Code,
			Description: module.Description,
		}

		if claimCount[module.ID] > 0 && assessmentCount[module.ID] > 0 {
			avgTarget := float64(assessmentSum[module.ID]) / float64(assessmentCount[module.ID])
			avgCurrent := float64(claimSum[module.ID]) / float64(claimCount[module.ID])
			value := round2(avgTarget - avgCurrent)
			gap.Gap = &value
		}

		out = append(out, gap)
	}

	return out
}

// TopGaps retorna os n módulos com maior lacuna não nula, em ordem
// decrescente. Empates preservam a ordem de entrada (sort estável).
func TopGaps(gaps []ModuleGap, n int) []ModuleGap {
	ranked := make([]ModuleGap, 0, len(gaps))
	for _, gap := range gaps {
		if gap.Gap != nil {
			ranked = append(ranked, gap)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Gap > *ranked[j].Gap
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
