// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/GrGLeo/dataguard/config"
	"github.com/GrGLeo/dataguard/engine"
	"github.com/GrGLeo/dataguard/internal/start"
	"github.com/GrGLeo/dataguard/reader/columnfile"
	"github.com/GrGLeo/dataguard/reader/csv"
	"github.com/GrGLeo/dataguard/schema"
)

func main() {
	flag.Parse()
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	code := 0
	err = start.Start(context.Background(), 5*time.Second, func(ctx context.Context) error {
		var runErr error
		code, runErr = run(ctx, logger)
		return runErr
	})
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(2)
	}
	os.Exit(code)
}

var (
	flagConfig    = flag.String("config", "", "path to the table's TOML schema file")
	flagInput     = flag.String("input", "", "path to the data file to validate")
	flagFormat    = flag.String("format", "csv", "input format: csv or columnfile")
	flagHasHeader = flag.Bool("header", true, "csv input has a header row")
	flagPrint     = flag.Bool("print", false, "print the full report as JSON")
)

// run loads the schema and data, validates, and reports the outcome.
// It returns a process exit code: 0 if every rule fully passed, 1 if
// any rule failed or the run was cancelled, and 2 together with a
// non-nil error for a startup or read failure (main then exits 2).
func run(ctx context.Context, logger *zap.Logger) (int, error) {
	if *flagConfig == "" || *flagInput == "" {
		return 2, fmt.Errorf("cmd/dataguard: -config and -input are required")
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return 2, err
	}
	plan, err := config.Build(cfg, schema.Options{})
	if err != nil {
		return 2, err
	}

	r, err := openReader(*flagFormat, *flagInput, *flagHasHeader)
	if err != nil {
		return 2, err
	}

	tableName := cfg.Table
	if tableName == "" {
		tableName = filepath.Base(*flagInput)
	}

	rep, err := engine.New(plan).Validate(ctx, tableName, r)
	if err != nil {
		return 2, err
	}

	logger.Info("validation complete",
		zap.String("table", rep.TableName),
		zap.Int("total_rows", rep.TotalRows),
		zap.Int("rules_passed", rep.Passed[0]),
		zap.Int("rules_total", rep.Passed[1]),
		zap.Bool("cancelled", rep.Cancelled),
	)

	if *flagPrint {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return 2, err
		}
	}

	if !rep.FullyPassed() {
		return 1, nil
	}
	return 0, nil
}

func openReader(format, path string, hasHeader bool) (engine.Reader, error) {
	switch format {
	case "csv":
		r := csv.New(path)
		r.HasHeader = hasHeader
		return r, nil
	case "columnfile":
		return columnfile.New(path), nil
	default:
		return nil, fmt.Errorf("cmd/dataguard: unknown format %q", format)
	}
}
