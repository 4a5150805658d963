// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the encodings [Encode] can write.
type Formats int32 //enums:enum -transform lower

const (
	JSON Formats = iota
	TOML
	YAML
)

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Formats, error) {
	var f Formats
	err := f.SetString(strings.ToLower(s))
	return f, err
}

// Document is the top-level value [Encode] writes. TOML requires a table
// at the top, so records are always wrapped.
type Document struct {
	Name    string
	Records []Record
}

// Encode writes the records of root to w in the given format.
// The output depends only on the tree, so encoding an identical tree
// yields identical bytes.
func Encode(w io.Writer, root *Group, format Formats) error {
	doc := Document{Name: root.Name, Records: Flatten(root)}
	var err error
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		err = enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("plant: unknown format %v", format)
	}
	if err != nil {
		return fmt.Errorf("plant: encoding %v: %w", format, err)
	}
	return nil
}

// Decode reads a document written by [Encode] in the given format.
func Decode(r io.Reader, format Formats) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(doc)
	case TOML:
		err = toml.NewDecoder(r).Decode(doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(doc)
	default:
		return nil, fmt.Errorf("plant: unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("plant: decoding %v: %w", format, err)
	}
	return doc, nil
}
