// Package storage defines the core storage interfaces that the application relies on.
// It abstracts the read side of the CLA signature records so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application. Implementations typically embed
// other narrower interfaces such as IndividualStorage.
type AllStorage interface {
	IndividualStorage
	OrganizationStorage
}

// Storage describes a storage handle with lifecycle management such as Close.
// The compliance engine only ever reads signature records; all writes happen in
// the sign-up system that owns the schema.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
