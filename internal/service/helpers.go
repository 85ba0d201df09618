package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/earthmove/internal/domain"
)

// storageError tags err as a storage failure unless it already carries a
// domain outcome the caller must see unchanged.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{domain.ErrDuplicateDescriptor, domain.ErrNotFound} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
