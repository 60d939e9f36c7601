package usecase

import "errors"

// ErrStockNotFound indicates that no stock matched the given identifier.
// Handlers translate it into a 404 response.
var ErrStockNotFound = errors.New("stock not found")
