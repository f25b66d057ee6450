// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmap

// BeagleBoneAI is the AM5729 based BeagleBone AI.
//
// Port i of the table is the GPIO module numbered i+1 in the AM572x
// technical reference manual. Where two balls share a header position, the
// plain code selects the "a" ball unless only a "b" ball is a GPIO.
var BeagleBoneAI = &Board{
	Name:  "BeagleBone AI",
	ID:    "bbai",
	Pins:  bbaiPins,
	Ports: []uint64{0x4AE10000, 0x48055000, 0x48057000, 0x48059000, 0x4805B000, 0x4805D000, 0x48051000, 0x48053000},
}

var bbaiPins = []HeaderPin{
	{803, 0, 24},
	{804, 0, 25},
	{805, 6, 1},
	{806, 6, 2},
	{807, 5, 5},
	{808, 5, 6},
	{809, 5, 18},
	{810, 5, 4},
	{811, 2, 11},
	{812, 2, 10},
	{813, 3, 11},
	{814, 3, 13},
	{815, 3, 3}, {8151, 3, 3}, {8152, 3, 27},
	{816, 3, 29},
	{817, 7, 18},
	{818, 3, 9},
	{819, 3, 10},
	{820, 5, 30},
	{821, 5, 29},
	{822, 0, 23},
	{823, 0, 22},
	{824, 6, 0},
	{825, 5, 31},
	{826, 3, 28},
	{827, 3, 23}, {8271, 3, 23}, {8272, 7, 19},
	{828, 3, 19}, {8281, 3, 19}, {8282, 7, 20},
	{829, 3, 22}, {8291, 3, 22}, {8292, 7, 21},
	{830, 3, 20}, {8301, 3, 20}, {8302, 7, 22},
	{831, 7, 14},
	{832, 7, 15},
	{833, 7, 13}, {8331, 7, 13}, {8332, 2, 1},
	{834, 7, 11}, {8341, 7, 11}, {8342, 3, 0},
	{835, 7, 12}, {8351, 7, 12}, {8352, 2, 0},
	{836, 7, 10}, {8361, 7, 10}, {8362, 3, 1},
	{837, 7, 8},
	{838, 7, 9},
	{839, 7, 6},
	{840, 7, 7},
	{841, 7, 4},
	{842, 7, 5},
	{843, 7, 2},
	{844, 7, 3},
	{845, 7, 0}, {8451, 7, 0}, {8452, 7, 16},
	{846, 7, 1}, {8461, 7, 1}, {8462, 7, 23},
	{911, 7, 17}, {9112, 7, 17},
	{912, 4, 0},
	{913, 5, 12}, {9132, 5, 12},
	{914, 3, 25},
	{915, 2, 12},
	{916, 3, 26},
	{917, 6, 17}, {9171, 6, 17}, {9172, 4, 3},
	{918, 6, 16}, {9181, 6, 16}, {9182, 4, 2},
	{919, 6, 3}, {9191, 6, 3}, {9192, 3, 6},
	{920, 6, 4}, {9201, 6, 4}, {9202, 3, 5},
	{921, 2, 3}, {9211, 2, 3}, {9212, 6, 15},
	{922, 5, 19}, {9221, 5, 19}, {9222, 6, 14},
	{923, 6, 11},
	{924, 5, 15},
	{925, 5, 17},
	{926, 5, 14}, {9261, 5, 14}, {9262, 2, 24},
	{927, 3, 15}, {9271, 3, 15}, {9272, 4, 1},
	{928, 3, 17},
	{929, 4, 11}, {9291, 4, 11}, {9292, 6, 30},
	{930, 4, 12},
	{931, 4, 10}, {9311, 4, 10}, {9312, 6, 31},
	{941, 5, 20}, {9411, 5, 20}, {9412, 3, 7},
	{942, 3, 18}, {9421, 3, 18}, {9422, 3, 14},
}
