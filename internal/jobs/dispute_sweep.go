package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type sessionFlagger interface {
	FlagOverdueDisputes(ctx context.Context, endedBefore time.Time) (int64, error)
}

// DisputeSweeper periodically moves sessions where the two parties disagree
// about completion into DISPUTED, once the grace period after the scheduled
// end has passed.
type DisputeSweeper struct {
	sessions sessionFlagger
	grace    time.Duration
	cron     *cron.Cron
}

func NewDisputeSweeper(sessions sessionFlagger, grace time.Duration) *DisputeSweeper {
	return &DisputeSweeper{
		sessions: sessions,
		grace:    grace,
		cron:     cron.New(),
	}
}

// Start schedules the sweep on the given cron spec and runs one sweep
// immediately so restarts do not delay overdue flags.
func (d *DisputeSweeper) Start(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.Sweep); err != nil {
		return err
	}
	d.cron.Start()
	go d.Sweep()
	return nil
}

func (d *DisputeSweeper) Stop() {
	d.cron.Stop()
}

func (d *DisputeSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-d.grace)
	flagged, err := d.sessions.FlagOverdueDisputes(ctx, cutoff)
	if err != nil {
		log.Printf("dispute sweep failed: %v", err)
		return
	}
	if flagged > 0 {
		log.Printf("dispute sweep flagged %d session(s)", flagged)
	}
}
