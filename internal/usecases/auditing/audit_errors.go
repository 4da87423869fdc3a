package auditing

import "errors"

var ErrInvalidFilters = errors.New("filtros de histórico inválidos")
