// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./...` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/gateway.go -destination=gateway_mock.go -package=mocks
