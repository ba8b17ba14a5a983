// SPDX-License-Identifier: EPL-2.0

// Package dspmath collects the small numeric building blocks several
// virtual-analog components share: a bounded Newton-Raphson solver,
// sample interpolation kernels, bilinear-transform prewarping, an RMS
// window, and a smooth-clamp saturating function.
package dspmath
