// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package fetch retrieves markup resources as text.
package fetch

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a resource does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrTooLarge is returned when a resource exceeds the size a fetcher accepts.
var ErrTooLarge = errors.New("resource too large")

// Fetcher loads the markup resource at path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load %s: status %d", e.Path, e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == 404
}

// Func adapts a plain function to Fetcher.
type Func func(ctx context.Context, path string) (string, error)

func (f Func) Fetch(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}
