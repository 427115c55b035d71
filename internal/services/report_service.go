package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/domain/ports"
	"github.com/skillsmatrix/backend/internal/domain/repositories"
)

// ReportService monta o relatório de cobertura por colaborador
type ReportService struct {
	collaboratorRepo repositories.CollaboratorRepository
	moduleRepo       repositories.ModuleRepository
	claimRepo        repositories.SkillClaimRepository
	assessmentRepo   repositories.AssessmentRepository
	logger           ports.Logger
}

// NewReportService cria um novo ReportService
func NewReportService(
	collaboratorRepo repositories.CollaboratorRepository,
	moduleRepo repositories.ModuleRepository,
	claimRepo repositories.SkillClaimRepository,
	assessmentRepo repositories.AssessmentRepository,
	logger ports.Logger,
) *ReportService {
	return &ReportService{
		collaboratorRepo: collaboratorRepo,
		moduleRepo:       moduleRepo,
		claimRepo:        claimRepo,
		assessmentRepo:   assessmentRepo,
		logger:           logger,
	}
}

// CoverageEntry é uma linha do relatório de cobertura: um módulo do
// catálogo cruzado com a autoavaliação e a avaliação do colaborador
type CoverageEntry struct {
	CollaboratorName  string               `json:"collaboratorName"`
	ModuleCode        string               `json:"moduleCode"`
	ModuleDescription string               `json:"moduleDescription"`
	CurrentLevel      *entities.SkillLevel `json:"currentLevel"`
	TargetLevel       *entities.SkillLevel `json:"targetLevel"`
	Gap               *int                 `json:"gap"`
}

// Coverage monta o relatório de cobertura do colaborador: uma linha
// por módulo do catálogo
func (s *ReportService) Coverage(ctx context.Context, collaboratorID string) ([]CoverageEntry, error) {
	collaborator, err := s.collaboratorRepo.FindByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, errors.ErrCollaboratorNotFound
	}

	modules, err := s.moduleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.claimRepo.List(ctx, repositories.SkillClaimListParams{CollaboratorID: collaboratorID})
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.List(ctx, repositories.AssessmentListParams{CollaboratorID: collaboratorID})
	if err != nil {
		return nil, err
	}

	return BuildCoverageEntries(collaborator.FullName, modules, claims, assessments), nil
}

// BuildCoverageEntries cruza o catálogo de módulos com as
// autoavaliações e avaliações do colaborador. Gap é nulo quando falta
// qualquer um dos lados do par.
func BuildCoverageEntries(
	collaboratorName string,
	modules []*entities.ModuleRoutine,
	claims []*entities.SkillClaimWithModule,
	assessments []*entities.ManagerAssessmentWithModule,
) []CoverageEntry {
	currentByModule := make(map[string]entities.SkillLevel, len(claims))
	for _, claim := range claims {
		currentByModule[claim.ModuleID] = claim.CurrentLevel
	}

	targetByModule := make(map[string]entities.SkillLevel, len(assessments))
	for _, assessment := range assessments {
		targetByModule[assessment.ModuleID] = assessment.TargetLevel
	}

	out := make([]CoverageEntry, 0, len(modules))
	for _, module := range modules {
		entry := CoverageEntry{
			CollaboratorName:  collaboratorName,
			ModuleCode:        module.Code,
			ModuleDescription: module.Description,
		}

		if current, ok := currentByModule[module.ID]; ok {
			level := current
			entry.CurrentLevel = &level
		}
		if target, ok := targetByModule[module.ID]; ok {
			level := target
			entry.TargetLevel = &level
		}
		if entry.CurrentLevel != nil && entry.TargetLevel != nil {
			gap := entities.Gap(*entry.TargetLevel, *entry.CurrentLevel)
			entry.Gap = &gap
		}

		out = append(out, entry)
	}

	return out
}

// RenderCoverageCSV serializa o relatório no formato consumido pelo
// frontend: cabeçalho fixo, campos de texto entre aspas duplas, níveis
// e lacunas ausentes como campo vazio.
func RenderCoverageCSV(entries []CoverageEntry) string {
	var b strings.Builder
	b.WriteString("colaborador,module_code,module_description,current_level,target_level,gap\n")

	for _, entry := range entries {
		b.WriteString(csvQuote(entry.CollaboratorName))
		b.WriteByte(',')
		b.WriteString(csvQuote(entry.ModuleCode))
		b.WriteByte(',')
		b.WriteString(csvQuote(entry.ModuleDescription))
		b.WriteByte(',')
		if entry.CurrentLevel != nil {
			b.WriteString(string(*entry.CurrentLevel))
		}
		b.WriteByte(',')
		if entry.TargetLevel != nil {
			b.WriteString(string(*entry.TargetLevel))
		}
		b.WriteByte(',')
		if entry.Gap != nil {
			b.WriteString(strconv.Itoa(*entry.Gap))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func csvQuote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
