//go:build windows

package xor

const textNewline = "\r\n"
