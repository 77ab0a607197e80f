package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
)

type parseFn[T any] func(s string) (interval.Interval[T], error)

// describe prints the relation between a and b and the composites that
// hold.
func describe[T any](w io.Writer, a, b interval.Interval[T]) {
	fmt.Fprintf(w, "%s %s %s\n", a, a.Relate(b), b)

	var composites []string
	for _, c := range []struct {
		name  string
		holds bool
	}{
		{"less-or-equal", a.LessOrEqual(b)},
		{"greater-or-equal", a.GreaterOrEqual(b)},
		{"between", a.Between(b)},
		{"includes-value", a.IncludesValue(b)},
		{"overlaps", a.Overlaps(b)},
	} {
		if c.holds {
			composites = append(composites, c.name)
		}
	}
	if len(composites) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(composites, ", "))
	}
}

func relatePair[T any](w io.Writer, parse parseFn[T], as, bs string) error {
	a, err := parse(as)
	if err != nil {
		return err
	}
	b, err := parse(bs)
	if err != nil {
		return err
	}
	describe(w, a, b)
	return nil
}

// relateConfig prints the relation of every ordered pair of intervals in
// cfg. A non-nil filter restricts the output to pairs where it holds.
func relateConfig[T any](w io.Writer, parse parseFn[T], cfg *Config, filter *interval.Relation) error {
	ivs := make([]interval.Interval[T], 0, len(cfg.Intervals))
	for _, ni := range cfg.Intervals {
		iv, err := parse(ni.Interval)
		if err != nil {
			return errors.Wrapf(err, "interval %s", ni.Name)
		}
		ivs = append(ivs, iv)
	}
	for i, a := range ivs {
		for j, b := range ivs {
			if i == j {
				continue
			}
			rel := a.Relate(b)
			if filter != nil && rel != *filter {
				continue
			}
			fmt.Fprintf(w, "%s %s %s\n", cfg.Intervals[i].Name, rel, cfg.Intervals[j].Name)
		}
	}
	return nil
}
