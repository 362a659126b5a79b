// Command growth appends integers to sequences of several sizes and reports how much copying
// their growth policy caused.
//
// Every size runs on its own sequence in its own goroutine, with its own codec derived from the
// selected one. The numbers are read back from the sequence's Prometheus metrics, and every
// sequence is round-tripped through the codec before reporting.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/sync/errgroup"

	"github.com/teenjuna/dynarray"
	"github.com/teenjuna/dynarray/codec"
	"github.com/teenjuna/dynarray/codec/gob"
	"github.com/teenjuna/dynarray/codec/json"
	"github.com/teenjuna/dynarray/growth"
)

const namespace = "growth"

type result struct {
	appends  int
	capacity int
	grows    float64
	copies   float64
	encoded  int
}

func main() {
	var (
		sizes    = flag.String("appends", "10,1000,100000,1000000", "comma-separated numbers of appends")
		capacity = flag.Int("capacity", dynarray.DefaultCapacity, "initial capacity")
		policy   = flag.String("policy", "doubling", "growth policy: doubling, exponential or linear")
		base     = flag.Float64("base", 1.5, "base of the exponential policy")
		step     = flag.Int("step", 16, "step of the linear policy")
		workers  = flag.Int("workers", 4, "number of concurrent simulations")
		format   = flag.String("codec", "json", "codec used to round-trip every sequence: json or gob")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	appends, err := parseSizes(*sizes)
	if err != nil {
		logger.Error("invalid appends", "error", err)
		os.Exit(2)
	}

	p, err := newPolicy(*policy, *base, *step)
	if err != nil {
		logger.Error("invalid policy", "error", err)
		os.Exit(2)
	}

	proto, err := newCodec(*format)
	if err != nil {
		logger.Error("invalid codec", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]result, len(appends))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(*workers, 1))

	for i, n := range appends {
		group.Go(func() error {
			res, err := simulate(ctx, n, *capacity, p, proto.Derive())
			if err != nil {
				return fmt.Errorf("simulate %d appends: %w", n, err)
			}
			logger.Debug("simulation done", "appends", n, "grows", res.grows)
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "appends\tcapacity\tgrows\tcopies\tcopies/append\tencoded bytes\t")
	for _, r := range results {
		fmt.Fprintf(
			w, "%d\t%d\t%.0f\t%.0f\t%.3f\t%d\t\n",
			r.appends, r.capacity, r.grows, r.copies, r.copies/float64(r.appends), r.encoded,
		)
	}
	if err := w.Flush(); err != nil {
		logger.Error("write results", "error", err)
		os.Exit(1)
	}
}

// simulate appends n integers to a new sequence, then round-trips it through c to check that the
// encoded form decodes to the same elements. The codec must not be shared with other goroutines.
func simulate(
	ctx context.Context,
	n, capacity int,
	policy growth.Policy,
	c codec.Codec[int],
) (result, error) {
	registry := prometheus.NewRegistry()

	seq, err := dynarray.New[int](func(cfg *dynarray.Config) {
		cfg.Capacity(capacity)
		cfg.Growth(policy)
		cfg.Prometheus(registry, namespace, "")
	})
	if err != nil {
		return result{}, fmt.Errorf("create sequence: %w", err)
	}

	for i := range n {
		if i%(1<<16) == 0 && ctx.Err() != nil {
			return result{}, ctx.Err()
		}
		seq.Add(i)
	}

	data, err := seq.Encode(c)
	if err != nil {
		return result{}, err
	}

	decoded, err := dynarray.New[int](func(cfg *dynarray.Config) {
		cfg.Capacity(capacity)
		cfg.Growth(policy)
	})
	if err != nil {
		return result{}, fmt.Errorf("create decoded sequence: %w", err)
	}
	if err := decoded.Decode(c, data); err != nil {
		return result{}, err
	}
	if !slices.Equal(slices.Collect(decoded.Values()), slices.Collect(seq.Values())) {
		return result{}, errors.New("decoded elements differ from encoded ones")
	}

	families, err := registry.Gather()
	if err != nil {
		return result{}, fmt.Errorf("gather metrics: %w", err)
	}

	return result{
		appends:  seq.Size(),
		capacity: seq.Capacity(),
		grows:    counter(families, namespace+"_grows"),
		copies:   counter(families, namespace+"_copies"),
		encoded:  len(data),
	}, nil
}

func counter(families []*dto.MetricFamily, name string) float64 {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func newPolicy(name string, base float64, step int) (growth.Policy, error) {
	switch name {
	case "doubling":
		return growth.Doubling(), nil
	case "exponential":
		if base <= 1 {
			return nil, fmt.Errorf("base can't be <= 1, got %g", base)
		}
		return growth.NewExponential(base), nil
	case "linear":
		if step < 1 {
			return nil, fmt.Errorf("step can't be < 1, got %d", step)
		}
		return growth.NewLinear(step), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func newCodec(name string) (codec.Codec[int], error) {
	switch name {
	case "json":
		return json.New[int](), nil
	case "gob":
		return gob.New[int](), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("appends can't be < 1, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no appends given")
	}
	return sizes, nil
}
