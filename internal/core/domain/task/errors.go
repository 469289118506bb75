package task

import "errors"

// ErrTaskDoesNotExist covers both absent tasks and tasks owned by another
// user, so that existence does not leak across tenants.
var ErrTaskDoesNotExist = errors.New("task does not exist")
