package repository

import "errors"

// ErrNotFound is wrapped with the entity name by repository lookups, e.g.
// "journal entry: not found". Callers test with errors.Is.
var ErrNotFound = errors.New("not found")
