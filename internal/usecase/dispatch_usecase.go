package usecase

import (
	"context"

	"sos/internal/domain/entity"
)

// DispatchUsecase notifies the emergency-dispatch service. It is never retried.
type DispatchUsecase interface {
	Notify(ctx context.Context, position entity.Position, caller entity.Caller) *entity.DispatchResult
}
