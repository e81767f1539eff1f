package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"

	"github.com/adhocore/gronx"
	"github.com/spf13/cobra"
)

func newPollCmd(cli *Cli) *cobra.Command {
	var (
		cron        string
		count       int
		changesOnly bool
	)

	c := cobra.Command{
		Use:     "poll ENDPOINT",
		Short:   "Send a GET request now and at every tick of a CRON expression",
		Example: program + " poll /lol-gameflow/v1/gameflow-phase --cron '* * * * *' --changes-only",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			if !gronx.IsValid(cron) {
				return fmt.Errorf("invalid CRON expression %s", cron)
			}
			if count < 0 {
				return errors.New("count must be greater than or equal to 0")
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var (
				previous any
				printed  int
			)

			for {
				v, err := cli.client.Get(ctx, args[0])
				if err != nil {
					if ctx.Err() != nil {
						return nil // interrupted
					}
					return err
				}

				if !changesOnly || printed == 0 || !reflect.DeepEqual(previous, v) {
					if err := cli.printResult(c, v); err != nil {
						return err
					}
					printed++
				}

				previous = v

				if count != 0 && printed >= count {
					return nil
				}

				next, err := nextTick(cron, time.Now())
				if err != nil {
					return err
				}

				if err := cli.wait(ctx, next); err != nil {
					return nil // interrupted
				}
			}
		},
	}

	c.Flags().StringVar(&cron, "cron", "* * * * *", "CRON expression, determining when to send further requests")
	c.Flags().IntVar(&count, "count", 0, "Number of results to print, before exiting - 0 means no limit")
	c.Flags().BoolVar(&changesOnly, "changes-only", false, "Print a result only if it differs from the previous one")

	return &c
}

// nextTick returns the next point in time after t, matching the CRON expression.
func nextTick(cron string, t time.Time) (time.Time, error) {
	next, err := gronx.NextTickAfter(cron, t, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to determine next tick of CRON expression %s: %v", cron, err)
	}
	return next, nil
}

// waitUntil waits until a point in time or until the context is done.
func waitUntil(ctx context.Context, until time.Time) error {
	timer := time.NewTimer(time.Until(until))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
