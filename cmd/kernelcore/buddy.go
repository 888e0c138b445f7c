package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eduos/kernelcore/pkg/pageframe"
)

type buddyOpts struct {
	pages    int
	maxOrder int
	low      int
	high     int
	ops      string
	useCache bool

	csvPath  string
	jsonPath string
}

type buddyRow struct {
	Tick   int    `json:"tick"`
	Op     string `json:"op"`
	Detail string `json:"detail"`
	Free   uint64 `json:"free_pages"`
	Cached uint64 `json:"cached_pages"`
}

func newBuddyCmd() *cobra.Command {
	var o buddyOpts

	cmd := &cobra.Command{
		Use:   "buddy",
		Short: "Replay an alloc/free workload against the buddy-system page allocator",
		Long: `buddy initializes a buddy-system page allocator over --pages page frames
and replays a comma-separated op script against it. Each op is either
"aN" (allocate a block of order N, assigning it the next free handle) or
"fH" (free the block previously allocated under handle H).

Example:
  kernelcore buddy --pages 16 --max-order 5 --ops a0,a0,f0,a2,f1,f2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuddy(o)
		},
	}

	cmd.Flags().IntVar(&o.pages, "pages", 64, "page frames managed by the allocator")
	cmd.Flags().IntVar(&o.maxOrder, "max-order", pageframe.DefaultMaxOrder, "exclusive upper bound on block order")
	cmd.Flags().IntVar(&o.low, "low", pageframe.DefaultLow, "page cache low watermark")
	cmd.Flags().IntVar(&o.high, "high", pageframe.DefaultHigh, "page cache high watermark")
	cmd.Flags().StringVar(&o.ops, "ops", "", "comma-separated op script, e.g. a0,a2,f0,f1")
	cmd.Flags().BoolVar(&o.useCache, "cache", false, "route order-0 ops through CachedAlloc/CachedFree instead of Alloc/Free")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write per-op rows to CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write per-op rows to JSON file")

	return cmd
}

type buddyOp struct {
	alloc  bool
	order  int
	handle int
}

func parseBuddyOps(spec string) ([]buddyOp, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	fields := strings.Split(spec, ",")
	ops := make([]buddyOp, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) < 2 {
			return nil, fmt.Errorf("malformed op %q", f)
		}
		n, err := strconv.Atoi(f[1:])
		if err != nil {
			return nil, fmt.Errorf("malformed op %q: %w", f, err)
		}
		switch f[0] {
		case 'a':
			ops = append(ops, buddyOp{alloc: true, order: n})
		case 'f':
			ops = append(ops, buddyOp{alloc: false, handle: n})
		default:
			return nil, fmt.Errorf("unknown op kind %q in %q", f[0:1], f)
		}
	}
	return ops, nil
}

func runBuddy(o buddyOpts) error {
	ops, err := parseBuddyOps(o.ops)
	if err != nil {
		return err
	}

	inst, err := pageframe.New("cli", o.pages, pageframe.Config{
		MaxOrder: o.maxOrder,
		Low:      o.low,
		High:     o.high,
	})
	if err != nil {
		return fmt.Errorf("init allocator: %w", err)
	}

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
		_ = csvW.Write([]string{"tick", "op", "detail", "free_pages", "cached_pages"})
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
	fmt.Fprintln(tw, "TICK\tOP\tDETAIL\tFREE\tCACHED\tFILL")
	fmt.Fprintln(tw, "----\t--\t------\t----\t------\t----")

	handles := map[int]*pageframe.Descriptor{}

	emit := func(tick int, opLabel, detail string) {
		free := inst.FreeSpace().Uint64()
		cached := inst.CachedSpace().Uint64()
		fill := inst.FillRatio()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%.2f\n", tick, opLabel, detail, free, cached, fill)
		if csvW != nil {
			_ = csvW.Write([]string{
				strconv.Itoa(tick), opLabel, detail,
				strconv.FormatUint(free, 10), strconv.FormatUint(cached, 10),
			})
			csvW.Flush()
		}
		if jsonF != nil {
			if tick > 0 {
				_, _ = jsonF.WriteString(",\n")
			}
			b, _ := json.MarshalIndent(buddyRow{Tick: tick, Op: opLabel, Detail: detail, Free: free, Cached: cached}, "  ", "  ")
			_, _ = jsonF.Write(b)
		}
	}

	emit(0, "init", fmt.Sprintf("pages=%d", o.pages))

	nextHandle := 0
	for i, op := range ops {
		tick := i + 1
		if op.alloc {
			var (
				d   *pageframe.Descriptor
				err error
			)
			if o.useCache && op.order == 0 {
				d, err = inst.CachedAlloc()
			} else {
				d, err = inst.Alloc(op.order)
			}
			if err != nil {
				emit(tick, "alloc", fmt.Sprintf("order=%d FAILED: %v", op.order, err))
				continue
			}
			h := nextHandle
			nextHandle++
			handles[h] = d
			emit(tick, "alloc", fmt.Sprintf("order=%d handle=%d index=%d", op.order, h, d.Index()))
			continue
		}

		d, ok := handles[op.handle]
		if !ok {
			emit(tick, "free", fmt.Sprintf("handle=%d FAILED: unknown handle", op.handle))
			continue
		}
		delete(handles, op.handle)

		if o.useCache && d.Order == 0 {
			err = inst.CachedFree(d)
		} else {
			err = inst.Free(d)
		}
		if err != nil {
			emit(tick, "free", fmt.Sprintf("handle=%d FAILED: %v", op.handle, err))
			continue
		}
		emit(tick, "free", fmt.Sprintf("handle=%d index=%d", op.handle, d.Index()))
	}

	tw.Flush()

	if jsonF != nil {
		_, _ = jsonF.WriteString("\n]\n")
	}

	fmt.Println()
	fmt.Println(inst.String())
	return nil
}
