// Package mocks provides shared test doubles for the store interfaces and the
// auth collaborators.
//
// The Mock* stores are in-memory fakes that behave like the PostgreSQL
// stores for the cases tests care about: uniqueness violations surface as
// store.ErrDuplicate, malformed IDs as store.ErrInvalidID and missing rows as
// the entity-specific not-found errors. Every method can be overridden with
// its Fn field. TestifyMockUserStore is a testify/mock double for tests that
// assert exact calls.
//
//	users := mocks.NewMockUserStore()
//	wishlists := mocks.NewMockWishlistStore(users)
//	users.Wishlists = wishlists
package mocks
