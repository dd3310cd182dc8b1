package ports

import (
	"context"

	"hood-sync/internal/features/hood/domain"
)

// ConnectionProbe checks that Hood.de is reachable with the configured credentials.
type ConnectionProbe interface {
	CheckConnection(ctx context.Context) domain.ConnectionStatus
}
