package scheduler

import "errors"

var ErrAlreadyRunning = errors.New("execução já em andamento")
