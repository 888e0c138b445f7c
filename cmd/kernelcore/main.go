// Command kernelcore drives the buddy-system page allocator and the
// pluggable process scheduler from the CLI: "buddy" replays an
// allocate/free workload against pkg/pageframe, "sched" replays a task
// set against pkg/sched, driven by a simulated SimClock by default or by
// the host's jiffy counter with --clock=host.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eduos/kernelcore/pkg/kpanic"
)

// strict and clockMode are bound to persistent root flags. strict applies
// to both subcommands; clockMode is read only by sched.
var (
	strict    bool
	clockMode string
)

func main() {
	root := &cobra.Command{
		Use:   "kernelcore",
		Short: "Buddy-system page allocator and scheduler-policy simulator",
		Long: `kernelcore replays a scripted workload against the buddy-system page
allocator (with its order-0 page cache) or against the pluggable process
scheduler, and reports the resulting state tick by tick.

* GitHub: https://github.com/eduos/kernelcore`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if strict {
				kpanic.Handler = kpanic.Panic
			}
		},
	}

	root.PersistentFlags().BoolVar(&strict, "strict", false, "escalate corruption-class errors to a panic instead of logging and returning")
	root.PersistentFlags().StringVar(&clockMode, "clock", "sim", "tick source for sched: sim|host")

	root.AddCommand(newBuddyCmd())
	root.AddCommand(newSchedCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
