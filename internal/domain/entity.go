package domain

// Entity is satisfied by a pointer to any persisted record.
// Identifiers are assigned by the store; zero means "not yet persisted".
type Entity[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}
