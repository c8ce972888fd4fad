package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/park285/leetcode-profile-go/internal/di"
)

const defaultConcurrency = 4

func main() {
	outputFile := flag.String("out", "", "output JSON file (default: stdout)")
	concurrency := flag.Int("concurrency", defaultConcurrency, "maximum concurrent lookups")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: fetch_profiles [-out file] [-concurrency n] username[,username...] ...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	usernames := parseUsernames(flag.Args())
	if len(usernames) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	tool, err := di.InitializeTool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize tool: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	startedAt := time.Now()
	results := lookupAll(ctx, tool.Service, usernames, *concurrency)
	stop()

	failed := countFailures(results)
	tool.Logger.Info("profile_fetch_completed",
		slog.Int("count", len(results)),
		slog.Int("failed", failed),
		slog.Duration("latency", time.Since(startedAt)),
	)

	if *outputFile == "" {
		err = encodeResults(os.Stdout, results)
	} else {
		err = writeResults(*outputFile, results)
	}
	tool.Close()

	if err != nil {
		tool.Logger.Error("profile_write_failed", slog.Any("error", err))
		os.Exit(1)
	}
	if failed == len(results) {
		os.Exit(1)
	}
}
