package usecase

import (
	"context"

	"github.com/xavierca1/onboard-desk/internal/entity"
	"github.com/xavierca1/onboard-desk/internal/infra/docgen"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
)

type ClientResolver interface {
	FindByEmail(ctx context.Context, email string) (int, *entity.ClientRecord, error)
}

type ClientStore interface {
	Create(ctx context.Context, rec *entity.ClientRecord) error
	Patch(ctx context.Context, rowIndex int, fields map[string]string) error
}

type NotifyProducer interface {
	PublishNotify(ctx context.Context, payload queue.NotifyPayload) error
}

type ContractRenderer interface {
	Render(data docgen.ContractData) ([]byte, error)
}
