// Package ownership decides whether a requesting user may mutate a record.
package ownership

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrNotOwner = errors.New("not authorized")
)

// Authorize permits a mutation when the record exists and belongs to the
// requester. Absence is reported before ownership, so deleting an id that
// does not exist is never answered with an authorization failure.
func Authorize(found bool, owner, requester string) error {
	if !found {
		return ErrNotFound
	}
	if owner != requester {
		return ErrNotOwner
	}
	return nil
}
