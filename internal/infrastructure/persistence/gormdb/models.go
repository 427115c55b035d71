package gormdb

// Models GORM. Os nomes de tabela, as restrições de unicidade e o
// comportamento de cascata/set-null replicam o schema SQLite original
// e fazem parte do contrato de persistência.

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                 string    `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	Role               string    `gorm:"not null"`
	MustChangePassword LooseBool `gorm:"not null;default:false"`
	CreatedAt          Timestamp `gorm:"not null"`
	UpdatedAt          Timestamp `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// CollaboratorModel é o model GORM para perfis de colaboradores
type CollaboratorModel struct {
	ID            string     `gorm:"primaryKey"`
	UserID        *string    `gorm:"uniqueIndex"`
	User          *UserModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	FullName      string     `gorm:"not null"`
	AdmissionDate Timestamp  `gorm:"not null"`
	Activities    StringList
	Notes         *string
	CreatedAt     Timestamp `gorm:"not null"`
	UpdatedAt     Timestamp `gorm:"not null"`
}

func (CollaboratorModel) TableName() string {
	return "collaborator_profiles"
}

// ModuleModel é o model GORM para módulos/rotinas
type ModuleModel struct {
	ID          string `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Observation *string
	CreatedAt   Timestamp `gorm:"not null"`
	UpdatedAt   Timestamp `gorm:"not null"`
}

func (ModuleModel) TableName() string {
	return "module_routines"
}

// SkillClaimModel é o model GORM para autoavaliações
type SkillClaimModel struct {
	ID             string             `gorm:"primaryKey"`
	CollaboratorID string             `gorm:"not null;uniqueIndex:idx_skill_claims_collaborator_module"`
	Collaborator   *CollaboratorModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ModuleID       string             `gorm:"not null;uniqueIndex:idx_skill_claims_collaborator_module"`
	Module         *ModuleModel       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CurrentLevel   string             `gorm:"not null"`
	Evidence       *string
	CreatedAt      Timestamp `gorm:"not null"`
	UpdatedAt      Timestamp `gorm:"not null"`
}

func (SkillClaimModel) TableName() string {
	return "skill_claims"
}

// AssessmentModel é o model GORM para avaliações do gestor
type AssessmentModel struct {
	ID             string             `gorm:"primaryKey"`
	CollaboratorID string             `gorm:"not null;uniqueIndex:idx_manager_assessments_collaborator_module"`
	Collaborator   *CollaboratorModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ModuleID       string             `gorm:"not null;uniqueIndex:idx_manager_assessments_collaborator_module"`
	Module         *ModuleModel       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TargetLevel    string             `gorm:"not null"`
	Comment        *string
	CreatedAt      Timestamp `gorm:"not null"`
	UpdatedAt      Timestamp `gorm:"not null"`
}

func (AssessmentModel) TableName() string {
	return "manager_assessments"
}

// CareerPlanModel é o model GORM para planos de carreira
type CareerPlanModel struct {
	ID             string             `gorm:"primaryKey"`
	CollaboratorID string             `gorm:"not null;index"`
	Collaborator   *CollaboratorModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Objectives     string             `gorm:"not null"`
	DueDate        *Timestamp
	Notes          *string
	CreatedAt      Timestamp `gorm:"not null"`
	UpdatedAt      Timestamp `gorm:"not null"`
}

func (CareerPlanModel) TableName() string {
	return "career_plans"
}

// CareerPlanModuleModel é o vínculo entre plano de carreira e módulo
type CareerPlanModuleModel struct {
	ID           string           `gorm:"primaryKey"`
	CareerPlanID string           `gorm:"not null;uniqueIndex:idx_career_plan_modules_plan_module"`
	CareerPlan   *CareerPlanModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ModuleID     string           `gorm:"not null;uniqueIndex:idx_career_plan_modules_plan_module"`
	Module       *ModuleModel     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    Timestamp        `gorm:"not null"`
}

func (CareerPlanModuleModel) TableName() string {
	return "career_plan_modules"
}

// AuditLogModel é o model GORM para registros de auditoria
type AuditLogModel struct {
	ID        string     `gorm:"primaryKey"`
	UserID    *string    `gorm:"index"`
	User      *UserModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Action    string     `gorm:"not null"`
	Entity    string     `gorm:"not null"`
	EntityID  *string
	Payload   *string
	CreatedAt Timestamp `gorm:"not null"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
