// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds the catalog data of one material
type Material struct {
	Name  string     `json:"name"`  // name of material; e.g. "firn"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // ranges of properties; e.g. "vpmin", "condmax"
}

// MatsData holds materials
type MatsData []*Material

// CatalogData holds the data of a (.cat) JSON file
type CatalogData struct {
	Desc      string   `json:"desc"`      // description of catalog
	Materials MatsData `json:"materials"` // all materials
}

// ReadCatalog reads a catalog from a (.cat) JSON file
func ReadCatalog(fn string) (cat catalog.Catalog, err error) {

	// read file
	b, err := readFile(fn)
	if err != nil {
		return nil, err
	}

	// decode
	var data CatalogData
	err = json.Unmarshal(b, &data)
	if err != nil {
		return nil, chk.Err("cannot unmarshal catalog file %q: %v", fn, err)
	}

	// limits
	cat = make(catalog.Catalog)
	for _, m := range data.Materials {
		if m.Name == "" {
			return nil, chk.Err("catalog file %q: material without name", fn)
		}
		cat[catalog.Key(m.Name)], err = catalog.FromParams(m.Prms)
		if err != nil {
			return nil, chk.Err("catalog file %q: material %q: %v", fn, m.Name, err)
		}
	}
	return
}

// NewCatalogData returns the catalog data corresponding to cat
func NewCatalogData(desc string, cat catalog.Catalog) (o *CatalogData) {
	o = &CatalogData{Desc: desc}
	for _, name := range cat.Names() {
		o.Materials = append(o.Materials, &Material{Name: name, Prms: cat[name].GetPrms()})
	}
	return
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\" : %q, \"v\" : %g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs the catalog file
func (o CatalogData) String() string {
	return io.Sf("{\n  \"desc\" : %q,\n%v\n}", o.Desc, o.Materials)
}
