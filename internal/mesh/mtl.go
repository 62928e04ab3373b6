package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Material is the Phong subset of an MTL entry.
type Material struct {
	Name           string
	Ambient        [3]float32 // Ka
	Diffuse        [3]float32 // Kd
	Specular       [3]float32 // Ks
	Shininess      float32    // Ns
	Dissolve       float32    // d, or 1-Tr
	Illum          int
	DiffuseTexname string // map_Kd
}

// DefaultMaterial is used for shapes without a resolvable material.
var DefaultMaterial = Material{
	Name:      "default",
	Ambient:   [3]float32{0.2, 0.2, 0.2},
	Diffuse:   [3]float32{0.8, 0.8, 0.8},
	Specular:  [3]float32{0.5, 0.5, 0.5},
	Shininess: 64,
	Dissolve:  1,
}

func ParseMTL(r io.Reader) ([]Material, error) {
	var (
		mats []Material
		cur  *Material
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if fields[0] == "newmtl" {
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: newmtl without a name", lineNo)
			}
			mats = append(mats, Material{Name: fields[1], Dissolve: 1, Shininess: 1})
			cur = &mats[len(mats)-1]
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("line %d: %q before newmtl", lineNo, fields[0])
		}

		var err error
		switch fields[0] {
		case "Ka":
			cur.Ambient, err = parseColor(fields[1:])
		case "Kd":
			cur.Diffuse, err = parseColor(fields[1:])
		case "Ks":
			cur.Specular, err = parseColor(fields[1:])
		case "Ns":
			cur.Shininess, err = parseScalar(fields[1:])
		case "d":
			cur.Dissolve, err = parseScalar(fields[1:])
		case "Tr":
			var tr float32
			tr, err = parseScalar(fields[1:])
			cur.Dissolve = 1 - tr
		case "illum":
			if len(fields) > 1 {
				cur.Illum, err = strconv.Atoi(fields[1])
			}
		case "map_Kd":
			if len(fields) > 1 {
				cur.DiffuseTexname = fields[len(fields)-1]
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", lineNo, fields[0], err)
		}
	}
	return mats, scanner.Err()
}

func parseColor(fields []string) ([3]float32, error) {
	v, err := parseFloats(fields, 1)
	if err != nil {
		return [3]float32{}, err
	}
	// a single value applies to all channels
	if len(v) < 3 {
		return [3]float32{v[0], v[0], v[0]}, nil
	}
	return [3]float32{v[0], v[1], v[2]}, nil
}

func parseScalar(fields []string) (float32, error) {
	v, err := parseFloats(fields, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
