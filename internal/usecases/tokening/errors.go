package tokening

import "errors"

var (
	ErrInvalidRecord   = errors.New("registro de credencial sem access_token")
	ErrNoSelectionSlot = errors.New("plataforma não possui seleção de sub-recurso")
)
