package port

import (
	"context"
	"ndjimba/internal/core/domain"
)

// SupportChannelPort hands a recovery link to the external messaging channel.
type SupportChannelPort interface {
	Open(ctx context.Context, phone string, link domain.SupportLink) error
}
