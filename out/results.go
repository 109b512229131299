// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LoadResults reads the tables written by Write. Names and warnings are not stored and remain empty
func LoadResults(dirout, fnkey string) (res []Result, err error) {

	// stiffness
	T, err := readTable(filepath.Join(dirout, fnkey+ExtStiffness), stiffnessKeys)
	if err != nil {
		return
	}
	res = make([]Result, len(T["id"]))
	index := make(map[int]int)
	for i, id := range T["id"] {
		var c [21]float64
		for k, key := range stiffnessKeys[:21] {
			c[k] = T[key][i]
		}
		res[i].Id = int(id)
		res[i].C = Unpack21(c)
		res[i].Rho = T["rho"][i]
		index[res[i].Id] = i
	}

	// permittivity and conductivity
	for _, ext := range []string{ExtPermittivity, ExtConductivity} {
		keys := permittivityKeys
		if ext == ExtConductivity {
			keys = conductivityKeys
		}
		T, err = readTable(filepath.Join(dirout, fnkey+ext), keys)
		if err != nil {
			return nil, err
		}
		for j, id := range T["id"] {
			i, ok := index[int(id)]
			if !ok {
				return nil, chk.Err("material %d in %q is not in the stiffness table", int(id), fnkey+ext)
			}
			var p [6]float64
			for k, key := range keys {
				p[k] = T[key][j]
			}
			if ext == ExtPermittivity {
				res[i].Eps = Unpack6(p)
			} else {
				res[i].Sig = Unpack6(p)
			}
		}
	}
	return
}

// readTable reads a table with io.ReadTable and checks its columns
func readTable(fn string, keys []string) (T map[string][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			T, err = nil, chk.Err("cannot read table %q: %v", fn, r)
		}
	}()
	_, T = io.ReadTable(fn)
	nrows := len(T["id"])
	for _, key := range append([]string{"id"}, keys...) {
		col, ok := T[key]
		if !ok {
			return nil, chk.Err("table %q has no column %q", fn, key)
		}
		if len(col) != nrows {
			return nil, chk.Err("column %q of table %q has %d values. %d are required", key, fn, len(col), nrows)
		}
	}
	return
}
