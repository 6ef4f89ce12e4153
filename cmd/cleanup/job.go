package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/config"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/printer"
)

type cleanupService interface {
	ScanDuplicates(ctx context.Context) ([]duplicatecleaner.Group, error)
	CleanupDuplicates(ctx context.Context, opts manualsync.CleanupOptions) (*manualsync.Result, error)
}

type notifier interface {
	Notify(ctx context.Context, text string) error
}

type job struct {
	svc      cleanupService
	notifier notifier
	printer  *printer.Printer
	opts     config.Cleanup
}

// run scans the local expenses once and removes the duplicates it finds. The scan is
// logged before anything is deleted.
func (j *job) run(ctx context.Context) (*manualsync.Result, error) {
	lg := zerolog.Ctx(ctx)

	groups, err := j.svc.ScanDuplicates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan duplicates")
	}

	lg.Info().Int("groups", len(groups)).Bool("dry_run", j.opts.DryRun).Msg("duplicate scan finished")

	if len(groups) == 0 {
		return nil, nil
	}

	lg.Debug().Msg(j.printer.Groups(ctx, groups))

	res, err := j.svc.CleanupDuplicates(ctx, manualsync.CleanupOptions{
		DryRun:       j.opts.DryRun,
		MaxToDelete:  j.opts.MaxToDelete,
		IncludeCloud: j.opts.IncludeCloud,
	})
	if res != nil {
		if notifyErr := j.notifier.Notify(ctx, j.printer.Result(ctx, res)); notifyErr != nil {
			lg.Err(notifyErr).Msg("failed to send cleanup report")
		}
	}

	if err != nil {
		return res, errors.Wrap(err, "failed to cleanup duplicates")
	}

	return res, nil
}
