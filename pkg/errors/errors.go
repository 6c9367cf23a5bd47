package errors

import "errors"

// ErrOptimisticLock is returned when a versioned update hits a concurrent
// modification. The caller should reload and retry.
var ErrOptimisticLock = errors.New("kayıt başka bir işlem tarafından değiştirildi, lütfen yenileyip tekrar deneyin")
