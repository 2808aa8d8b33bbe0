// Copyright 2017, Kerby Shedden and the Muscato contributors.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// readLines reads newline-delimited byte strings from r. A trailing
// '\r' is trimmed so CRLF input behaves like LF input; the final record
// may omit its trailing newline.
func readLines(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	var out [][]byte
	for scanner.Scan() {
		line := scanner.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		out = append(out, cp)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// writeResults writes one "i,j,d\n" record per result row to w, adding
// base to every index (1 for 1-based output, 0 for --zero-index).
func writeResults(w io.Writer, i, j []uint32, d []uint8, base uint32) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	defer bw.Flush()

	buf := make([]byte, 0, 32)
	for n := range i {
		buf = buf[:0]
		buf = strconv.AppendUint(buf, uint64(i[n]+base), 10)
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, uint64(j[n]+base), 10)
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, uint64(d[n]), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("writing result row %d: %w", n, err)
		}
	}
	return bw.Flush()
}
