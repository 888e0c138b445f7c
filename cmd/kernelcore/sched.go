package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eduos/kernelcore/pkg/platform"
	"github.com/eduos/kernelcore/pkg/sched"
)

type schedOpts struct {
	policy  string
	tasks   string
	ticks   int
	quantum uint64

	csvPath  string
	jsonPath string
	htmlPath string
}

type schedRow struct {
	Tick int    `json:"tick"`
	PID  int    `json:"pid"`
	Name string `json:"name"`
}

func newSchedCmd() *cobra.Command {
	var o schedOpts

	cmd := &cobra.Command{
		Use:   "sched",
		Short: "Replay a task set against a scheduling policy",
		Long: `sched builds a runqueue from --tasks and drives it one tick at a time
through the chosen --policy, printing which task runs at each tick.

Aperiodic task spec: name:priority:nice (priority/nice used by the
policies that read them, ignored otherwise).
Periodic task spec:  name:period:deadline:wcet

Example:
  kernelcore sched --policy rm --tasks "a:20:20:5,b:50:50:10" --ticks 100

--ticks 0 runs until Ctrl-C, driven by --clock (sim: an internal counter
advanced once per loop iteration; host: the kernel's own jiffy counter).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSched(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVar(&o.policy, "policy", "fair", "round-robin|priority|fair|aedf|edf|rm")
	cmd.Flags().StringVar(&o.tasks, "tasks", "", "comma-separated task specs")
	cmd.Flags().IntVar(&o.ticks, "ticks", 20, "number of ticks to simulate (0 = run until Ctrl-C)")
	cmd.Flags().Uint64Var(&o.quantum, "quantum", 4, "round-robin quantum, in ticks")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write per-tick rows to CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write per-tick rows to JSON file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write a per-tick trace report to HTML file")

	return cmd
}

// schedClock picks the tick source named by the root --clock flag. advance
// drives a sim clock forward one tick per loop iteration; a host clock
// advances on its own and advance is a no-op.
func schedClock() (clock platform.Clock, advance func(), err error) {
	switch strings.ToLower(clockMode) {
	case "", "sim":
		sim := platform.NewSimClock()
		return sim, func() { sim.Advance(1) }, nil
	case "host":
		host, err := platform.NewLinuxJiffyClock()
		if err != nil {
			return nil, nil, err
		}
		return host, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown clock mode %q", clockMode)
	}
}

func parsePolicyKind(name string) (sched.PolicyKind, error) {
	switch strings.ToLower(name) {
	case "round-robin", "rr":
		return sched.PolicyRoundRobin, nil
	case "priority":
		return sched.PolicyStaticPriority, nil
	case "fair":
		return sched.PolicyFair, nil
	case "aedf":
		return sched.PolicyAEDF, nil
	case "edf":
		return sched.PolicyEDF, nil
	case "rm":
		return sched.PolicyRateMonotonic, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

// parseTasks reads comma-separated task specs. A spec with 3 colon-
// separated fields (name:priority:nice) builds an aperiodic task; one
// with 4 (name:period:deadline:wcet) builds a periodic task released at
// tick 0.
func parseTasks(spec string) ([]*sched.Task, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("no tasks provided")
	}

	var tasks []*sched.Task
	for i, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		parts := strings.Split(field, ":")
		pid := i + 1

		switch len(parts) {
		case 3:
			priority, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("task %q: bad priority: %w", field, err)
			}
			nice, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("task %q: bad nice: %w", field, err)
			}
			tasks = append(tasks, sched.NewTask(pid, parts[0], priority, nice))
		case 4:
			period, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("task %q: bad period: %w", field, err)
			}
			deadline, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("task %q: bad deadline: %w", field, err)
			}
			wcet, err := strconv.ParseUint(parts[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("task %q: bad wcet: %w", field, err)
			}
			tasks = append(tasks, sched.NewPeriodicTask(pid, parts[0], period, deadline, wcet, 0))
		default:
			return nil, fmt.Errorf("malformed task spec %q", field)
		}
	}
	return tasks, nil
}

func runSched(ctx context.Context, o schedOpts) error {
	kind, err := parsePolicyKind(o.policy)
	if err != nil {
		return err
	}
	tasks, err := parseTasks(o.tasks)
	if err != nil {
		return err
	}

	rq := sched.NewRunqueue()
	for _, t := range tasks {
		rq.Add(t)
	}

	pol := sched.NewPolicy(sched.Config{Kind: kind, Quantum: o.quantum, DeadlineMissLog: true})
	clock, advance, err := schedClock()
	if err != nil {
		return fmt.Errorf("clock: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		csvW  *csv.Writer
		csvF  *os.File
		jsonF *os.File
	)
	if o.csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(o.csvPath), 0o755); err != nil {
			return fmt.Errorf("csv dir: %w", err)
		}
		csvF, err = os.Create(o.csvPath)
		if err != nil {
			return fmt.Errorf("csv create: %w", err)
		}
		defer csvF.Close()
		csvW = csv.NewWriter(csvF)
		_ = csvW.Write([]string{"tick", "pid", "name"})
	}
	if o.jsonPath != "" {
		if err := os.MkdirAll(filepath.Dir(o.jsonPath), 0o755); err != nil {
			return fmt.Errorf("json dir: %w", err)
		}
		jsonF, err = os.Create(o.jsonPath)
		if err != nil {
			return fmt.Errorf("json create: %w", err)
		}
		defer jsonF.Close()
		_, _ = jsonF.WriteString("[\n")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "policy: %s\n\n", kind)
	fmt.Fprintln(tw, "TICK\tPID\tNAME")
	fmt.Fprintln(tw, "----\t---\t----")

	var rows []schedRow
	wroteJSON := 0

loop:
	for tick := 0; o.ticks == 0 || tick < o.ticks; tick++ {
		select {
		case <-ctx.Done():
			slog.Info("interrupted")
			break loop
		default:
		}

		picked, err := pol.PickNext(rq, clock.CurrentTick())
		if err != nil {
			fmt.Fprintf(tw, "%d\t-\tidle (%v)\n", tick, err)
		} else {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", tick, picked.PID, picked.Name)

			r := schedRow{Tick: tick, PID: picked.PID, Name: picked.Name}
			rows = append(rows, r)

			if csvW != nil {
				_ = csvW.Write([]string{strconv.Itoa(tick), strconv.Itoa(picked.PID), picked.Name})
				csvW.Flush()
			}
			if jsonF != nil {
				if wroteJSON > 0 {
					_, _ = jsonF.WriteString(",\n")
				}
				b, _ := json.MarshalIndent(r, "  ", "  ")
				_, _ = jsonF.Write(b)
				wroteJSON++
			}
		}
		advance()
	}

	tw.Flush()
	if jsonF != nil {
		_, _ = jsonF.WriteString("\n]\n")
	}

	if o.htmlPath != "" {
		if err := writeSchedHTML(o.htmlPath, kind.String(), rows); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}
	return nil
}

var schedTpl = template.Must(template.New("sched-report").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Scheduler Trace</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
table{border-collapse:collapse;font-size:14px}
th,td{border:1px solid #ddd;padding:4px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
</style>
<h1>Scheduler Trace</h1>
<p>Policy: {{.Policy}} &nbsp;|&nbsp; Ticks: {{len .Rows}}</p>
<table>
<thead><tr><th>tick</th><th>pid</th><th>name</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Tick}}</td><td>{{.PID}}</td><td>{{.Name}}</td></tr>
{{end}}
</tbody>
</table>
</html>`))

func writeSchedHTML(path string, policy string, rows []schedRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := schedTpl.Execute(&buf, struct {
		Policy string
		Rows   []schedRow
	}{Policy: policy, Rows: rows}); err != nil {
		return err
	}
	_, err = f.Write(buf.Bytes())
	return err
}
