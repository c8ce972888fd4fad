package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sourcegraph/conc/pool"

	"github.com/park285/leetcode-profile-go/internal/profile"
)

type profileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*profile.Profile, error)
}

type lookupError struct {
	Kind    profile.ErrorKind `json:"kind"`
	Message string            `json:"message"`
}

// lookupResult 는 사용자 한 명의 조회 결과다. profile 과 error 중 하나만 채워진다.
type lookupResult struct {
	Username string           `json:"username"`
	Profile  *profile.Profile `json:"profile"`
	Error    *lookupError     `json:"error"`
}

// parseUsernames 는 인자 목록에서 공백을 제거하고 중복을 걸러 입력 순서를 유지한다.
func parseUsernames(args []string) []string {
	seen := make(map[string]struct{}, len(args))
	usernames := make([]string, 0, len(args))
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			usernames = append(usernames, name)
		}
	}
	return usernames
}

// lookupAll 은 최대 concurrency 개까지 동시에 조회하고 입력 순서대로 결과를 돌려준다.
func lookupAll(ctx context.Context, fetcher profileFetcher, usernames []string, concurrency int) []lookupResult {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]lookupResult, len(usernames))
	p := pool.New().WithMaxGoroutines(concurrency)
	for idx, username := range usernames {
		p.Go(func() {
			results[idx] = lookupOne(ctx, fetcher, username)
		})
	}
	p.Wait()

	return results
}

func lookupOne(ctx context.Context, fetcher profileFetcher, username string) lookupResult {
	result := lookupResult{Username: username}
	found, err := fetcher.FetchProfile(ctx, username)
	if err != nil {
		classified := profile.Classify(err)
		result.Error = &lookupError{Kind: classified.Kind, Message: classified.Message}
		return result
	}
	result.Profile = found
	return result
}

func countFailures(results []lookupResult) int {
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
	}
	return failed
}

func encodeResults(w io.Writer, results []lookupResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// writeResults 는 임시 파일에 쓴 뒤 rename 해서 중간 상태의 파일이 남지 않게 한다.
func writeResults(outputFile string, results []lookupResult) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpFile := outputFile + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open temp file: %w", err)
	}
	if err := encodeResults(file, results); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpFile, outputFile); err != nil {
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}
