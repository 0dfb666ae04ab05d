// SPDX-License-Identifier: MIT
// Package: lvknap/instance
//
// codec.go - YAML/JSON instance documents.
//
// Contract:
//   • capacity is required; items may be empty.
//   • value and weight are required per item.
//   • labels are optional; when any item carries one, Labels is filled and
//     unlabeled items get their decimal index.
//   • The decoded instance is validated before it is returned.

package instance

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// document is the on-disk shape of an Instance.
type document struct {
	Name     string     `yaml:"name,omitempty"`
	Capacity *float64   `yaml:"capacity"`
	Items    []itemNode `yaml:"items"`
}

type itemNode struct {
	Label  string   `yaml:"label,omitempty"`
	Value  *float64 `yaml:"value"`
	Weight *float64 `yaml:"weight"`
}

// Decode reads one instance document from r.
func Decode(r io.Reader) (Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, wrapf(methodDecode, "empty document", ErrMalformed)
		}

		return Instance{}, wrapf(methodDecode, "%v", ErrMalformed, err)
	}
	if doc.Capacity == nil {
		return Instance{}, wrapf(methodDecode, "capacity is missing", ErrMalformed)
	}

	inst := Instance{Name: doc.Name, Capacity: *doc.Capacity}
	inst.Items = make([]knapsack.Item, len(doc.Items))
	labeled := false
	for i, it := range doc.Items {
		if it.Value == nil || it.Weight == nil {
			return Instance{}, wrapf(methodDecode, "item %d: value and weight are required", ErrMalformed, i)
		}
		inst.Items[i] = knapsack.Item{Value: *it.Value, Weight: *it.Weight}
		labeled = labeled || it.Label != ""
	}
	if labeled {
		inst.Labels = make([]string, len(doc.Items))
		for i, it := range doc.Items {
			inst.Labels[i] = it.Label
			if it.Label == "" {
				inst.Labels[i] = decimalLabel(i)
			}
		}
	}
	if err := inst.Validate(); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// Encode writes inst to w as a YAML document.
func Encode(w io.Writer, inst Instance) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	doc := document{Name: inst.Name, Capacity: &inst.Capacity}
	doc.Items = make([]itemNode, len(inst.Items))
	for i := range inst.Items {
		v, wt := inst.Items[i].Value, inst.Items[i].Weight
		doc.Items[i] = itemNode{Value: &v, Weight: &wt}
		if inst.Labels != nil {
			doc.Items[i].Label = inst.Labels[i]
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return wrapf(methodEncode, "instance %q", err, inst.Name)
	}

	return enc.Close()
}

// Load decodes the instance file at path.
func Load(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Save encodes inst into the file at path, replacing it.
func Save(path string, inst Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, inst)
}
