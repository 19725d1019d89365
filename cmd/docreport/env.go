package main

import (
	"context"
	"io"
	"os"
	"time"

	docreport "github.com/alnah/go-docreport"
)

// reportGenerator is the part of *docreport.Generator the CLI uses.
type reportGenerator interface {
	Generate(ctx context.Context, r docreport.Report) (*docreport.Result, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewGenerator func(opts ...docreport.Option) (reportGenerator, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewGenerator: func(opts ...docreport.Option) (reportGenerator, error) {
			return docreport.NewGenerator(opts...)
		},
	}
}
