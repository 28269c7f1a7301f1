package accommodation

import "errors"

var ErrAccommodationNotFound = errors.New("accommodation not found")

var ErrInvalidType = errors.New("invalid accommodation type")
