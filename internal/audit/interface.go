package audit

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record persists an authentication event. Failures are logged and
	// swallowed so auditing never breaks the calling flow.
	Record(ctx context.Context, input RecordInput)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
