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

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one address row of a batch cleaning run.
type Record struct {
	RunID      int
	Raw        string
	Cleaned    string
	PostalJunk bool
	TokenCount int
}

// CreateRun creates a new run entry and returns its run_id.
func CreateRun(ctx context.Context, pool *pgxpool.Pool, description string) (int, error) {
	var runID int
	err := pool.QueryRow(ctx,
		"INSERT INTO lex_runs (description) VALUES ($1) RETURNING run_id",
		description).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %v", err)
	}
	return runID, nil
}

// recordSource implements the pgx.CopyFromSource interface over a slice
// of Records.
type recordSource struct {
	records []Record
	idx     int
}

func (s *recordSource) Next() bool {
	s.idx++
	return s.idx <= len(s.records)
}

func (s *recordSource) Values() ([]interface{}, error) {
	r := s.records[s.idx-1]
	return []interface{}{r.RunID, r.Raw, r.Cleaned, r.PostalJunk, r.TokenCount}, nil
}

func (s *recordSource) Err() error {
	return nil
}

// InsertRecords bulk-loads the cleaned records of a run.
func InsertRecords(ctx context.Context, pool *pgxpool.Pool, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("unable to acquire a connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Conn().CopyFrom(
		ctx,
		pgx.Identifier{"lex_records"},
		[]string{"run_id", "raw_address", "cleaned_address", "postal_junk", "token_count"},
		&recordSource{records: records},
	)
	if err != nil {
		return fmt.Errorf("error copying records: %w", err)
	}
	return nil
}

// LoadRunRecords returns the raw and cleaned sentences of a run.
func LoadRunRecords(ctx context.Context, pool *pgxpool.Pool, runID int) ([]Record, error) {
	rows, err := pool.Query(ctx,
		"SELECT run_id, raw_address, cleaned_address, postal_junk, token_count FROM lex_records WHERE run_id = $1",
		runID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.RunID, &r.Raw, &r.Cleaned, &r.PostalJunk, &r.TokenCount); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
