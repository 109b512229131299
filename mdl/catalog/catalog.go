// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package catalog holds empirical ranges of seismic velocities and dielectric properties of
// earth materials
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrUnknown is returned when a material name is not present in a catalog
var ErrUnknown = errors.New("catalog: unknown material")

// Limits holds the ranges of properties of one material
type Limits struct {
	VpMin   float64 // minimum P-wave velocity [m/s]
	VpMax   float64 // maximum P-wave velocity [m/s]
	VsMin   float64 // minimum S-wave velocity [m/s]
	VsMax   float64 // maximum S-wave velocity [m/s]
	PermMin float64 // minimum relative permittivity [-]
	PermMax float64 // maximum relative permittivity [-]
	CondMin float64 // minimum conductivity [S/m]
	CondMax float64 // maximum conductivity [S/m]
}

// Catalog maps material names to limits
type Catalog map[string]Limits

// builtin holds the default table
var builtin = Catalog{
	"air":       {343, 343, 0, 0, 1, 1, 1e-16, 1e-15},
	"ice1h":     {3400, 3800, 1700, 1900, 3.1, 3.22, 1e-7, 1e-6},
	"snow":      {100, 2000, 50, 500, 1, 70, 1e-9, 1e-4},
	"soil":      {300, 700, 100, 300, 3.9, 29.4, 1e-2, 1e-1},
	"water":     {1450, 1500, 0, 0, 80.36, 80.36, 5.5e-6, 5e-2},
	"oil":       {1200, 1250, 0, 0, 2.07, 2.14, 5.7e-8, 2.1e-7},
	"dry_sand":  {400, 1200, 100, 500, 2.9, 4.7, 1e-3, 1e-3},
	"wet_sand":  {1500, 2000, 400, 600, 2.9, 105, 2.5e-4, 1.2e-3},
	"granite":   {4500, 6000, 2500, 3300, 4.8, 18.9, 4e-5, 2.5e-4},
	"gneiss":    {4400, 5200, 2700, 3200, 8.5, 8.5, 2.5e-4, 2.5e-3},
	"basalt":    {5000, 6000, 2800, 3400, 12, 12, 1e-6, 1e-4},
	"limestone": {3500, 6000, 2000, 3300, 7.8, 8.5, 2.5e-4, 1e-3},
	"anhydrite": {4000, 5500, 2200, 3100, 5, 11.5, 1e-6, 1e-5},
	"coal":      {2200, 2700, 1000, 1400, 5.6, 6.3, 1e-8, 1e-3},
	"salt":      {4500, 5500, 2500, 3100, 5.6, 5.6, 1e-7, 1e2},
}

// Default returns a copy of the built-in catalog
func Default() Catalog {
	return builtin.Clone()
}

// Key normalises a material name: lower case, spaces and dashes replaced by underscores
func Key(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Get returns the limits of a material
func (o Catalog) Get(name string) (lim Limits, err error) {
	lim, ok := o[Key(name)]
	if !ok {
		return lim, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return
}

// Clone returns a copy of this catalog
func (o Catalog) Clone() Catalog {
	res := make(Catalog, len(o))
	for k, v := range o {
		res[k] = v
	}
	return res
}

// Merge returns a copy of this catalog with entries from other added or replaced
func (o Catalog) Merge(other Catalog) Catalog {
	res := o.Clone()
	for k, v := range other {
		res[Key(k)] = v
	}
	return res
}

// Names returns the sorted material names
func (o Catalog) Names() (names []string) {
	for k := range o {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

// FromParams sets limits from parameters. Missing parameters are left as zero.
func FromParams(prms dbf.Params) (lim Limits, err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "vpmin":
			lim.VpMin = p.V
		case "vpmax":
			lim.VpMax = p.V
		case "vsmin":
			lim.VsMin = p.V
		case "vsmax":
			lim.VsMax = p.V
		case "permmin":
			lim.PermMin = p.V
		case "permmax":
			lim.PermMax = p.V
		case "condmin":
			lim.CondMin = p.V
		case "condmax":
			lim.CondMax = p.V
		default:
			return lim, chk.Err("catalog: parameter named %q is incorrect\n", p.N)
		}
	}
	if lim.VpMax < lim.VpMin || lim.VsMax < lim.VsMin || lim.PermMax < lim.PermMin || lim.CondMax < lim.CondMin {
		return lim, chk.Err("catalog: maximum values must not be smaller than minimum values. %v", lim)
	}
	return
}

// GetPrms returns the limits as parameters
func (o Limits) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "vpmin", V: o.VpMin},     // [m/s]
		&dbf.P{N: "vpmax", V: o.VpMax},     // [m/s]
		&dbf.P{N: "vsmin", V: o.VsMin},     // [m/s]
		&dbf.P{N: "vsmax", V: o.VsMax},     // [m/s]
		&dbf.P{N: "permmin", V: o.PermMin}, // [-]
		&dbf.P{N: "permmax", V: o.PermMax}, // [-]
		&dbf.P{N: "condmin", V: o.CondMin}, // [S/m]
		&dbf.P{N: "condmax", V: o.CondMax}, // [S/m]
	}
}
