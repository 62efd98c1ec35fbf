package sqlite

import (
	"fmt"

	"github.com/aretw0/memotori/pkg/core"
)

// unixNow reads the clock as Unix seconds. A clock before the epoch is a ClockError.
func (s *Store) unixNow(op string) (int64, error) {
	t := s.now()
	if t.Unix() < 0 {
		return 0, core.NewStorageError(core.ErrClockError, op, fmt.Errorf("clock reports %s", t.UTC()))
	}
	return t.Unix(), nil
}
