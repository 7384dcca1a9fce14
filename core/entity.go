package core

// Entity is a unique identifier for an entity
// Zero is never a valid entity
type Entity uint64
