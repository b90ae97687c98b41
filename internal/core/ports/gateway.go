// internal/core/ports/gateway.go
package ports

import (
	"context"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// InventoryGateway is the contract for the upstream x3pl backend.
type InventoryGateway interface {
	// FetchAll retrieves the full record set in a single call.
	FetchAll(ctx context.Context) ([]domain.InventoryRecord, error)

	// AddMinimal creates one new record from a minimal payload.
	AddMinimal(ctx context.Context, item domain.MinimalImportRecord) error
}
