package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Chamadas aninhadas não são suportadas: a função passada a
// WithTransaction não deve iniciar outra transação.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
