package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	// RoleMaster é o gestor responsável pela matriz de habilidades
	RoleMaster Role = "MASTER"
	// RoleColaborador é o colaborador avaliado pela matriz
	RoleColaborador Role = "COLABORADOR"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	return r == RoleMaster || r == RoleColaborador
}
