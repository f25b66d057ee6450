// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omap

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Map implements Mapper.
func (d *DevMem) Map(base uint64) (Bank, error) {
	if base&uint64(os.Getpagesize()-1) != 0 {
		return nil, errors.Errorf("omap: %#x is not page aligned", base)
	}
	p := d.path()
	mem, err := mmap(p, base, WindowSize)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.Wrapf(err, "omap: need more access, try as root to map %s", p)
		}
		return nil, errors.Wrapf(err, "omap: mapping %#x from %s", base, p)
	}
	w, err := NewWindow(base, mem)
	if err != nil {
		_ = munmap(mem)
		return nil, err
	}
	w.unmap = munmap
	glog.V(2).Infof("omap: mapped %d bytes at %#x from %s", WindowSize, base, p)
	return w, nil
}

// mmap and munmap are replaced in tests.
var (
	mmap = func(path string, base uint64, size int) ([]byte, error) {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
		if err != nil {
			return nil, &os.PathError{Op: "open", Path: path, Err: err}
		}
		// The mapping stays valid after the descriptor is closed.
		defer unix.Close(fd)
		return unix.Mmap(fd, int64(base), size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	}
	munmap = unix.Munmap
)
