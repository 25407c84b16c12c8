// Command cotree builds a tree over a contiguous key range and runs queries
// against it.
//
//	cotree -from 0 -to 1024 -query 42 -query 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/cotree"
	"github.com/hupe1980/cotree/internal/conv"
	"github.com/hupe1980/cotree/internal/simd"
)

// queryList collects repeated -query flags.
type queryList []int32

func (q *queryList) String() string {
	parts := make([]string, len(*q))
	for i, v := range *q {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

func (q *queryList) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	k, err := conv.Int64ToInt32(v)
	if err != nil {
		return err
	}
	*q = append(*q, k)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cotree", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		from     = fs.Int64("from", 0, "first key of the range")
		to       = fs.Int64("to", 8, "end of the range (exclusive); to-from must be a power of two")
		verbose  = fs.Bool("v", false, "verbose output")
		jsonLogs = fs.Bool("json", false, "log in JSON")
		queries  queryList
	)
	fs.Var(&queries, "query", "key to search for (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	lo, err := conv.Int64ToInt32(*from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	hi, err := conv.Int64ToInt32(*to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}
	count, err := conv.Int64ToInt(int64(hi) - int64(lo))
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	if *jsonLogs {
		handler = slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level})
	}
	logger := cotree.NewLogger(handler)

	tree, err := cotree.New(cotree.FromRange(lo, hi), count, cotree.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.WithCount(tree.Len()).WithHeight(tree.Height()).Debug("tree ready",
		"min", tree.Min(),
		"max", tree.Max(),
		"isa", simd.ActiveISA().String(),
	)

	for _, q := range queries {
		leaf, ok := tree.Search(q)
		if !ok {
			fmt.Fprintf(stdout, "query=%d not in tree\n", q)
			continue
		}
		fmt.Fprintf(stdout, "query=%d key=%d leaf=%d index=%d\n", q, leaf.Key, leaf.LeafNumber, leaf.Index)
	}
	return nil
}
