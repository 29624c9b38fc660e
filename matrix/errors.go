package matrix

import "errors"

// ErrBadShape is returned when a requested matrix order is invalid.
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrNonSquare is returned when NewSymmetricFrom is given a ragged or
// non-square set of rows.
var ErrNonSquare = errors.New("matrix: input rows are not square")
