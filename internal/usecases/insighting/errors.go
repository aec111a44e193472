package insighting

import "errors"

var (
	// ErrSupersededFetch indica que uma consulta mais nova começou antes desta terminar
	ErrSupersededFetch = errors.New("consulta de métricas substituída por uma mais recente")
	ErrInvalidRange    = errors.New("intervalo de datas inválido")
)
