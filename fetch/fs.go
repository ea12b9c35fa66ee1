// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// FSFetcher reads resources from a file system, usually the embedded views.
type FSFetcher struct {
	fsys fs.FS
}

func NewFS(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

func (f *FSFetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	b, err := fs.ReadFile(f.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
