// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package omap

import "github.com/pkg/errors"

// Map implements Mapper.
func (d *DevMem) Map(base uint64) (Bank, error) {
	return nil, errors.Errorf("omap: mapping %s is only supported on linux", d.path())
}
