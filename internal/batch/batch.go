// Package batch validates many numbers concurrently with one shared
// interpreter.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"telinput/internal/phone"
	"telinput/internal/trace"
)

// Item is one number to validate.
type Item struct {
	Line    int // 1-based source line, 0 if not read from a file
	Number  string
	Country phone.CountryCode
}

// Result pairs an item with its verdict.
type Result struct {
	Item
	Verdict phone.Verdict
}

// ReadItems reads "number[,country]" records. Lines starting with '#' are
// comments. Records without a country use defaultCountry.
func ReadItems(r io.Reader, defaultCountry phone.CountryCode) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var items []Item
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read numbers: %w", err)
		}
		line, _ := cr.FieldPos(0)

		number := strings.TrimSpace(rec[0])
		if number == "" {
			continue
		}
		country := defaultCountry
		if len(rec) > 1 && strings.TrimSpace(rec[1]) != "" {
			c, ok := phone.NormalizeCountry(strings.TrimSpace(rec[1]))
			if !ok {
				return nil, fmt.Errorf("line %d: bad country %q", line, rec[1])
			}
			country = c
		}
		if country == "" {
			return nil, fmt.Errorf("line %d: no country for %q", line, number)
		}
		items = append(items, Item{Line: line, Number: number, Country: country})
	}
}

// Validate classifies every item, running up to jobs validations at once
// (GOMAXPROCS when jobs <= 0). Results keep the order of items. The first
// non-structural failure cancels the rest.
func Validate(ctx context.Context, in *phone.Interpreter, items []Item, jobs int) ([]Result, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "batch", 0)
	defer span.End("")

	// each goroutine writes its own index
	results := make([]Result, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(items)))
	for i, item := range items {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			verdict, err := in.Validate(item.Number, item.Country)
			if err != nil {
				if item.Line > 0 {
					return fmt.Errorf("line %d: %w", item.Line, err)
				}
				return err
			}
			results[i] = Result{Item: item, Verdict: verdict}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	span.WithExtra("items", fmt.Sprint(len(items)))
	return results, nil
}

// Summary counts results per verdict.
type Summary struct {
	Total     int
	ByVerdict map[phone.Verdict]int
}

// Summarize counts results per verdict.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), ByVerdict: make(map[phone.Verdict]int)}
	for _, r := range results {
		s.ByVerdict[r.Verdict]++
	}
	return s
}

// Valid returns the number of VALID results.
func (s Summary) Valid() int { return s.ByVerdict[phone.Valid] }
