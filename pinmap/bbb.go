// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmap

// BeagleBoneBlack is the AM3358 based BeagleBone Black.
//
// P9.41 and P9.42 are each wired to two balls; the plain code selects the
// GPIO0 ball.
var BeagleBoneBlack = &Board{
	Name:  "BeagleBone Black",
	ID:    "bbb",
	Pins:  bbbPins,
	Ports: []uint64{0x44E07000, 0x4804C000, 0x481AC000, 0x481AE000},
}

var bbbPins = []HeaderPin{
	{803, 1, 6},
	{804, 1, 7},
	{805, 1, 2},
	{806, 1, 3},
	{807, 2, 2},
	{808, 2, 3},
	{809, 2, 5},
	{810, 2, 4},
	{811, 1, 13},
	{812, 1, 12},
	{813, 0, 23},
	{814, 0, 26},
	{815, 1, 15},
	{816, 1, 14},
	{817, 0, 27},
	{818, 2, 1},
	{819, 0, 22},
	{820, 1, 31},
	{821, 1, 30},
	{822, 1, 5},
	{823, 1, 4},
	{824, 1, 1},
	{825, 1, 0},
	{826, 1, 29},
	{827, 2, 22},
	{828, 2, 24},
	{829, 2, 23},
	{830, 2, 25},
	{831, 0, 10},
	{832, 0, 11},
	{833, 0, 9},
	{834, 2, 17},
	{835, 0, 8},
	{836, 2, 16},
	{837, 2, 14},
	{838, 2, 15},
	{839, 2, 12},
	{840, 2, 13},
	{841, 2, 10},
	{842, 2, 11},
	{843, 2, 8},
	{844, 2, 9},
	{845, 2, 6},
	{846, 2, 7},
	{911, 0, 30},
	{912, 1, 28},
	{913, 0, 31},
	{914, 1, 18},
	{915, 1, 16},
	{916, 1, 19},
	{917, 0, 5},
	{918, 0, 4},
	{919, 0, 13},
	{920, 0, 12},
	{921, 0, 3},
	{922, 0, 2},
	{923, 1, 17},
	{924, 0, 15},
	{925, 3, 21},
	{926, 0, 14},
	{927, 3, 19},
	{928, 3, 17},
	{929, 3, 15},
	{930, 3, 16},
	{931, 3, 14},
	{941, 0, 20}, {9411, 0, 20}, {9412, 3, 20},
	{942, 0, 7}, {9421, 0, 7}, {9422, 3, 18},
}
