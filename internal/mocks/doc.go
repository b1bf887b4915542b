// Package mocks provides hand-written test doubles for the store and auth
// interfaces. The store mocks are in-memory maps with the same soft-delete
// and scoping behavior the postgres implementations have, so service tests
// exercise realistic data access without a database.
package mocks
