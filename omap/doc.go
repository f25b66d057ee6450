// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package omap gives access to the GPIO modules of TI OMAP derived SoCs
// through memory mapped registers.
//
// The AM335x (BeagleBone Black) and the AM572x (BeagleBone AI) share the same
// GPIO module: 32 lines per module, with dedicated set and clear registers so
// that a batch of lines can be driven with a single store.
//
// Mapping /dev/mem requires root or CAP_SYS_RAWIO.
//
// # Datasheet
//
// https://www.ti.com/lit/ug/spruh73q/spruh73q.pdf chapter 25
//
// https://www.ti.com/lit/ug/spruhz6l/spruhz6l.pdf chapter 27
package omap
