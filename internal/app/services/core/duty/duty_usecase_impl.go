package duty

import (
	"context"
	"duty-service/internal/app/config"
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/services/shared/metrics"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/dto/responses"
	"duty-service/internal/pkg/intent"
	"duty-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type dutyUsecase struct {
	Resolver       contracts.DutyResolver
	InternalConfig *config.InternalConfig
	Metrics        *metrics.SkillMetrics
	Log            *zap.Logger
	now            func() time.Time
}

func NewDutyUsecase(
	resolver contracts.DutyResolver,
	internalConfig *config.InternalConfig,
	skillMetrics *metrics.SkillMetrics,
	logger *zap.Logger,
) contracts.DutyUsecase {
	return &dutyUsecase{
		Resolver:       resolver,
		InternalConfig: internalConfig,
		Metrics:        skillMetrics,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *dutyUsecase) Answer(ctx context.Context, utterance string) (*responses.DutyReply, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := utils.TodayIn(uc.now(), utils.KST())
	parsed := intent.Parse(utterance, today)
	if parsed.Kind == intent.KindUnresolved && uc.InternalConfig.Duty.UnresolvedAsToday {
		parsed = intent.Date(today)
	}

	uc.Log.Info("dutyUsecase.Answer intent resolved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUtteranceKey, utterance),
		zap.String(constvars.LoggingIntentKey, parsed.Kind.String()),
		zap.String(constvars.LoggingStrategyKey, uc.Resolver.Strategy()),
	)
	uc.Metrics.ObserveIntent(parsed.Kind.String())

	var text string
	switch parsed.Kind {
	case intent.KindDate:
		answer := uc.Resolver.Resolve(parsed.Date)
		uc.Log.Info("dutyUsecase.Answer date resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, utils.FormatISODate(parsed.Date)),
			zap.String("status", string(answer.Status)),
			zap.Int("name_count", len(answer.Names)),
		)
		text = ComposeDay(answer, uc.InternalConfig.Duty.Label)

	case intent.KindWeek:
		answers := ResolveWeek(uc.Resolver, parsed.Date)
		uc.Log.Info("dutyUsecase.Answer week resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, utils.FormatISODate(answers[0].Date)),
		)
		text = ComposeWeek(answers)

	case intent.KindInvalid:
		uc.Log.Warn("dutyUsecase.Answer utterance carries an invalid date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(parsed.Err),
		)
		text = constvars.SkillMessageUsage

	default:
		text = constvars.SkillMessageUsage
	}

	return &responses.DutyReply{
		Text:   text,
		Intent: parsed.Kind.String(),
	}, nil
}
