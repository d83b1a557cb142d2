// Package store defines the persistence contracts of the registry: one store
// interface per entity, the sentinel errors every implementation reports and a
// helper for running several writes in one transaction.
//
// Implementations translate driver failures into the sentinels below, so the
// service layer can classify failures without knowing the database in use.
package store
