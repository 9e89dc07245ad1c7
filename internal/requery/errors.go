package requery

import "errors"

var ErrNoPending = errors.New("no pending purchases")
