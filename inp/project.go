// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from project (.json), catalog (.cat) and
// orientation (.ang) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/UMainedynamics/seidart/mdl/catalog"
	"github.com/UMainedynamics/seidart/mdl/ice"
	"github.com/UMainedynamics/seidart/mdl/material"
	"github.com/UMainedynamics/seidart/mdl/snow"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SampleData holds the input data of one material
type SampleData struct {
	Id          int     `json:"id"`          // identifier of the material in the model grid
	Name        string  `json:"name"`        // material name; e.g. "ice1h", "granite"
	Temp        float64 `json:"temp"`        // temperature [°C]
	Rho         float64 `json:"rho"`         // density [kg/m³]
	Porosity    float64 `json:"porosity"`    // porosity [%]
	Lwc         float64 `json:"lwc"`         // liquid water content [%]
	Anisotropic bool    `json:"anisotropic"` // use the orientations in angfile
	AngFile     string  `json:"angfile"`     // orientation file; relative to the project file
	SnowMethod  string  `json:"snowmethod"`  // permittivity model of snow; e.g. "wise"
	IceDensity  string  `json:"icedensity"`  // density model of ice; e.g. "gammon"
}

// Data holds global data of a project
type Data struct {
	Desc    string  `json:"desc"`    // description of project
	DirOut  string  `json:"dirout"`  // directory for output; e.g. /tmp/seidart
	Freq    float64 `json:"freq"`    // centre frequency of the electromagnetic source [Hz]
	Workers int     `json:"workers"` // number of samples computed at the same time; 0 means number of CPUs
	Catalog string  `json:"catalog"` // catalog file with extra or replacement materials
}

// Project holds all input data
type Project struct {

	// input
	Data    Data          `json:"data"`    // global data
	Samples []*SampleData `json:"samples"` // all materials

	// derived
	Key string          // filename key; e.g. project.json => project
	Dir string          // directory of project file
	Cat catalog.Catalog // built-in catalog merged with the catalog file
}

// ReadProject reads all project data from a JSON file
func ReadProject(fn string) (o *Project, err error) {

	// read file
	b, err := readFile(fn)
	if err != nil {
		return nil, err
	}

	// decode
	o = new(Project)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal project file %q: %v", fn, err)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(fn))
	o.Key = io.FnKey(filepath.Base(fn))

	// output directory
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/seidart/" + o.Key
	}
	o.Data.DirOut = os.ExpandEnv(o.Data.DirOut)

	// catalog
	o.Cat = catalog.Default()
	if o.Data.Catalog != "" {
		var cat catalog.Catalog
		cat, err = ReadCatalog(o.path(o.Data.Catalog))
		if err != nil {
			return nil, err
		}
		o.Cat = o.Cat.Merge(cat)
	}

	// check
	if len(o.Samples) == 0 {
		return nil, chk.Err("project file %q has no samples", fn)
	}
	if o.Data.Freq < 0 {
		return nil, chk.Err("project file %q: frequency must be non-negative. %g is invalid", fn, o.Data.Freq)
	}
	return
}

// Materials returns the samples to be computed
func (o *Project) Materials() (res []*material.Sample, err error) {
	ids := make(map[int]bool)
	for _, d := range o.Samples {
		if ids[d.Id] {
			return nil, chk.Err("sample id %d is repeated", d.Id)
		}
		ids[d.Id] = true
		s := &material.Sample{
			Id:          d.Id,
			Temp:        d.Temp,
			Rho:         d.Rho,
			Porosity:    d.Porosity,
			Lwc:         d.Lwc,
			Anisotropic: d.Anisotropic,
			Freq:        o.Data.Freq,
		}
		s.Class, err = material.ParseClass(d.Name)
		if err != nil {
			return
		}
		s.SnowMethod, err = snow.ParseMethod(d.SnowMethod)
		if err != nil {
			return
		}
		s.IceDensity, err = ice.ParseDensityMethod(d.IceDensity)
		if err != nil {
			return
		}
		if d.AngFile != "" {
			s.AngFile = o.path(d.AngFile)
		}
		res = append(res, s)
	}
	return
}

// path returns fn relative to the project directory, unless fn is absolute
func (o *Project) path(fn string) string {
	fn = os.ExpandEnv(fn)
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.Dir, fn)
}
