// Package service contains the mutation pipeline of the registry: the user,
// credential and wishlist use cases that sit between the HTTP layer and the
// stores defined in internal/store.
//
// Every operation runs the same sequence. It builds an in-memory candidate
// with defaults and merges applied, passes it through domain.Validate,
// performs the store call and classifies any store failure once, in
// classifyStoreError. Errors returned to callers are *Error values whose
// Kind is one of ErrInvalidInput, ErrConflict, ErrUnauthorized,
// ErrForbidden, ErrNotFound or ErrFatal.
//
// Ownership is checked by the caller through WishlistService.CheckOwner
// before Update or RemoveOne; the mutators themselves do not authorize.
package service
