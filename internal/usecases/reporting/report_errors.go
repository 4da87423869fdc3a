package reporting

import "errors"

var ErrInvalidPeriod = errors.New("período inválido")
