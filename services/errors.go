package services

import "errors"

var (
	// ErrCartNotFound means the identifier is in neither the guest cache
	// nor the durable store (or not in the store a given operation needs).
	ErrCartNotFound = errors.New("cart not found")

	// ErrNothingToUpdate is the reconciler's no-op verdict: the submitted
	// update would not change the persisted cart at all.
	ErrNothingToUpdate = errors.New("cart is already up to date")

	// ErrEmptyCart rejects cart creation without items.
	ErrEmptyCart = errors.New("cart must have at least one item")
)
