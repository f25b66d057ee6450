// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omap

import (
	"os"
	"syscall"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
)

func TestDevMem_Map(t *testing.T) {
	defer reset()
	var gotPath string
	var gotBase uint64
	unmapped := 0
	mmap = func(path string, base uint64, size int) ([]byte, error) {
		if size != WindowSize {
			t.Fatalf("size = %#x", size)
		}
		gotPath = path
		gotBase = base
		buf := make([]uint32, size/4)
		return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), size), nil
	}
	munmap = func([]byte) error {
		unmapped++
		return nil
	}
	d := DevMem{}
	b, err := d.Map(0x4804C000)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/dev/mem" || gotBase != 0x4804C000 {
		t.Fatalf("mapped %s at %#x", gotPath, gotBase)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if unmapped != 1 {
		t.Fatalf("unmapped %d times", unmapped)
	}
}

func TestDevMem_Map_errors(t *testing.T) {
	defer reset()
	d := DevMem{Path: "/dev/gpiomem"}
	if _, err := d.Map(0x4804C004); err == nil {
		t.Fatal("unaligned address should fail")
	}
	mmap = func(path string, base uint64, size int) ([]byte, error) {
		return nil, &os.PathError{Op: "open", Path: path, Err: syscall.EACCES}
	}
	_, err := d.Map(0x4804C000)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !os.IsPermission(errors.Cause(err)) {
		t.Fatalf("unexpected error %v", err)
	}
	mmap = func(path string, base uint64, size int) ([]byte, error) {
		return nil, syscall.EINVAL
	}
	if _, err = d.Map(0x4804C000); errors.Cause(err) != syscall.EINVAL {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDevMem_Map_unmapFailure(t *testing.T) {
	defer reset()
	mmap = func(path string, base uint64, size int) ([]byte, error) {
		buf := make([]uint32, size/4)
		return unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), size), nil
	}
	munmap = func([]byte) error {
		return syscall.EINVAL
	}
	b, err := (&DevMem{}).Map(0x481AC000)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); errors.Cause(err) != syscall.EINVAL {
		t.Fatalf("Close() = %v", err)
	}
}

var origMmap, origMunmap = mmap, munmap

func reset() {
	mmap = origMmap
	munmap = origMunmap
}
