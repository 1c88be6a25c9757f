package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup, update or delete targets an
// identifier that does not exist. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
