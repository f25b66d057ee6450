// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package omap

import (
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DriverDir is where the kernel lists the GPIO modules bound to the omap_gpio
// driver.
const DriverDir = "/sys/bus/platform/drivers/omap_gpio"

// BaseAddresses queries the virtual file system to retrieve the physical base
// address of every GPIO module known to the kernel, in increasing order.
//
// The kernel names each device after its register address, e.g.
// 44e07000.gpio, so no hardware access is needed.
func BaseAddresses() ([]uint64, error) {
	return getBaseAddresses(DriverDir)
}

func getBaseAddresses(driverDir string) ([]uint64, error) {
	items, err := os.ReadDir(driverDir)
	if err != nil {
		return nil, err
	}
	out := getBaseAddressesFromDirItems(items)
	if len(out) == 0 {
		return nil, errors.Errorf("omap: no gpio module found in %s", driverDir)
	}
	return out, nil
}

func getBaseAddressesFromDirItems(items []os.DirEntry) []uint64 {
	var out []uint64
	for _, item := range items {
		if address, ok := extractBaseAddress(item.Name()); ok {
			out = append(out, address)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// extractBaseAddress parses names like "4804c000.gpio".
func extractBaseAddress(name string) (uint64, bool) {
	name = path.Base(name)
	if !strings.HasSuffix(name, ".gpio") {
		return 0, false
	}
	prefix := name[:len(name)-len(".gpio")]
	address, err := strconv.ParseUint(prefix, 16, 64)
	if err != nil {
		return 0, false
	}
	return address, true
}

// Missing returns the addresses of want that are not in found.
func Missing(want, found []uint64) []uint64 {
	var out []uint64
	for _, w := range want {
		ok := false
		for _, f := range found {
			if f == w {
				ok = true
				break
			}
		}
		if !ok {
			out = append(out, w)
		}
	}
	return out
}
