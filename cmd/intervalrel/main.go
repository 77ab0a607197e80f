package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	file := flag.StringP("file", "f", "", "yaml file with named intervals, prints the pairwise relations")
	addr := flag.Bool("addr", false, "parse intervals as ip address intervals")
	relation := flag.StringP("relation", "r", "", "only print pairs in this relation (with --file)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] A B\n       %s [flags] --file intervals.yaml\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer klog.Flush()

	var err error
	if *addr {
		err = run(os.Stdout, interval.ParseAddr, *file, *relation, flag.Args())
	} else {
		err = run(os.Stdout, interval.ParseInt[int64], *file, *relation, flag.Args())
	}
	if err != nil {
		klog.ErrorS(err, "intervalrel failed")
		klog.Flush()
		os.Exit(1)
	}
}

func run[T any](w io.Writer, parse parseFn[T], file, relation string, args []string) error {
	logger := klog.Background().WithName("intervalrel")

	if file == "" {
		if len(args) != 2 {
			flag.Usage()
			return errors.Newf("expected two intervals, got %d", len(args))
		}
		logger.V(2).Info("relating", "a", args[0], "b", args[1])
		return relatePair(w, parse, args[0], args[1])
	}

	cfg, err := loadConfig(file)
	if err != nil {
		return err
	}
	var filter *interval.Relation
	if relation != "" {
		rel, err := interval.ParseRelation(relation)
		if err != nil {
			return err
		}
		filter = &rel
	}
	logger.V(2).Info("relating interval file", "file", file, "intervals", len(cfg.Intervals))
	return relateConfig(w, parse, cfg, filter)
}
