package contracts

import (
	"context"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/dto/responses"
	"time"
)

// DutyResolver answers who is on duty for one date. Implementations are
// immutable after construction and safe for concurrent use.
type DutyResolver interface {
	Resolve(date time.Time) models.DutyAnswer
	Strategy() string
}

type DutyUsecase interface {
	Answer(ctx context.Context, utterance string) (*responses.DutyReply, error)
}
