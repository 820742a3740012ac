// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package stats summarizes the lexical shape of a batch cleaning run.
package stats

import (
	"sort"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/TFMV/AddressLexer/internal/dra"
)

// Record pairs one raw input address with its cleaned form.
type Record struct {
	Raw     string
	Cleaned string
}

// RunSummary aggregates lexical metrics over one batch run.
type RunSummary struct {
	Records        int     `json:"records"`
	PostalJunkRate float64 `json:"postal_junk_rate"`
	FrontGateRate  float64 `json:"front_gate_rate"`
	MeanTokens     float64 `json:"mean_tokens"`
	StdDevTokens   float64 `json:"stddev_tokens"`
	MedianTokens   float64 `json:"median_tokens"`
	MeanRawTokens  float64 `json:"mean_raw_tokens"`
}

// Summarize computes per-run metrics. Cleaned sentences are counted with
// a plain space split since the cleaning pass already collapsed
// whitespace; the raw side goes through prose tokenization to count what
// arrived before any normalization.
func Summarize(records []Record) (RunSummary, error) {
	summary := RunSummary{Records: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	tokenCounts := make([]float64, len(records))
	rawCounts := make([]float64, len(records))
	var junk, gates int

	var firstErr error
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)

	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec Record) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rawTokens, err := tokenizeRaw(rec.Raw)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			rawCounts[i] = float64(len(rawTokens))
			tokenCounts[i] = float64(len(strings.Fields(rec.Cleaned)))
			if strings.Contains(rec.Cleaned, dra.PostalAddressElement) {
				junk++
			}
			if strings.Contains(rec.Cleaned, dra.FrontGate) {
				gates++
			}
		}(i, rec)
	}
	wg.Wait()

	if firstErr != nil {
		return RunSummary{}, firstErr
	}

	n := float64(len(records))
	summary.PostalJunkRate = float64(junk) / n
	summary.FrontGateRate = float64(gates) / n
	summary.MeanTokens = stat.Mean(tokenCounts, nil)
	if len(records) > 1 {
		summary.StdDevTokens = stat.StdDev(tokenCounts, nil)
	}
	summary.MeanRawTokens = stat.Mean(rawCounts, nil)

	sorted := append([]float64(nil), tokenCounts...)
	sort.Float64s(sorted)
	summary.MedianTokens = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return summary, nil
}

func tokenizeRaw(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, tok.Text)
	}
	return tokens, nil
}
