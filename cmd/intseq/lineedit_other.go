//go:build !linux

package main

import "io"

func newLineReader(in io.Reader, _ io.Writer) lineReader {
	return newPlainReader(in)
}
