//go:build !windows

package xor

const textNewline = "\n"
