package competition

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartScoreRefresh runs UpdateScores every interval until the returned
// scheduler is shut down. Overlapping runs are skipped.
func StartScoreRefresh(svc *Service, interval, timeout time.Duration, log *zap.Logger) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			text, err := svc.UpdateScores(ctx)
			if err != nil {
				log.Error("scheduled competition refresh failed", zap.Error(err))
				return
			}
			log.Debug("scheduled competition refresh", zap.String("result", text))
		}),
		gocron.WithName("competition-score-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	return sched, nil
}
