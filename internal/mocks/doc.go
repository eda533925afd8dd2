// Package mocks provides hand-written test doubles for the store, auth and
// generation interfaces.
package mocks
