package repositories

// Optional representa um campo de atualização parcial em três estados:
// ausente (não toca o campo), nulo (limpa o campo) ou valor novo.
type Optional[T any] struct {
	set   bool
	valid bool
	value T
}

// Some cria um Optional com valor definido
func Some[T any](value T) Optional[T] {
	return Optional[T]{set: true, valid: true, value: value}
}

// Null cria um Optional presente porém nulo (limpa o campo)
func Null[T any]() Optional[T] {
	return Optional[T]{set: true}
}

// IsSet indica se o campo foi informado na atualização
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get retorna o valor e se ele é não-nulo
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}
