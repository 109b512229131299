// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/UMainedynamics/seidart/homog"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ErrFormat is returned when an orientation file cannot be parsed
var ErrFormat = errors.New("inp: invalid orientation file")

// ReadAng reads Euler angles [rad] from a whitespace-delimited (.ang) file
//  Notes:
//   1) blank lines and lines starting with '#' are skipped
//   2) NaN values are dropped and the first three remaining values of each line are the angles;
//      columns after the angles are ignored, even if they are not numbers
//   3) before the first data line, lines with fewer than three leading numbers are headers
//   4) data lines with fewer than three values and files without data are invalid
func ReadAng(fn string) (ens homog.Ensemble, err error) {
	b, err := readFile(fn)
	if err != nil {
		return nil, err
	}
	return ParseAng(string(b), fn)
}

// ParseAng parses the contents of an orientation file. fn is only used in messages
func ParseAng(data, fn string) (ens homog.Ensemble, err error) {
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vals, text := angles(line)
		if text && len(vals) < 3 {
			if len(ens) == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: %s:%d: non-numeric value in %q", ErrFormat, fn, i+1, line)
		}
		if len(vals) < 3 {
			return nil, fmt.Errorf("%w: %s:%d: three angles are required. %d given", ErrFormat, fn, i+1, len(vals))
		}
		ens = append(ens, homog.Euler{vals[0], vals[1], vals[2]})
	}
	if len(ens) == 0 {
		return nil, fmt.Errorf("%w: %s: no orientations", ErrFormat, fn)
	}
	return
}

// angles returns up to three leading numbers of line, skipping NaNs. text indicates that a
// non-numeric token stopped the scan
func angles(line string) (vals []float64, text bool) {
	for _, tok := range strings.Fields(line) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return vals, true
		}
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
		if len(vals) == 3 {
			return
		}
	}
	return
}

// readFile reads a file, returning an error instead of panicking
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read file %q: %v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}

// AngReader reads orientation files relative to a directory
type AngReader struct {
	Dir string // directory of relative paths
}

// ReadAng reads the orientation file fn
func (o AngReader) ReadAng(fn string) (homog.Ensemble, error) {
	if !filepath.IsAbs(fn) && o.Dir != "" {
		fn = filepath.Join(o.Dir, fn)
	}
	return ReadAng(fn)
}
