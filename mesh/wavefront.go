package mesh

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/larkspur-gfx/meshbvh/types"
)

// Load reads a Wavefront .obj mesh from a local path or an http(s):// URL
// and returns its Geometry View. Only the subset of the format relevant to
// the accelerator is parsed: vertex positions (v), vertex normals (vn) and
// triangular faces (f); materials, texture coordinates, groups and included
// files are ignored, since the accelerator has no notion of per-face
// material or attribute.
func Load(pathOrURL string) (*Geometry, error) {
	if !strings.HasSuffix(strings.ToLower(pathOrURL), ".obj") {
		return nil, ErrUnsupportedFormat
	}

	res, err := newResource(pathOrURL, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	r := &wavefrontReader{}
	if err := r.parse(res); err != nil {
		return nil, err
	}

	if len(r.corners) == 0 {
		return nil, ErrEmptyGeometry
	}

	return &Geometry{
		Positions: r.positions,
		Normals:   r.normals,
		Corners:   r.corners,
	}, nil
}

type wavefrontReader struct {
	positions []types.Vec3
	normals   []types.Vec3
	corners   []Corner

	lineNum int
}

func (r *wavefrontReader) emitError(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", r.lineNum, fmt.Sprintf(format, args...))
}

func (r *wavefrontReader) parse(res *resource) error {
	// Normals are optional in the format; synthesize a single placeholder
	// so that faces without vn references still have a valid N index.
	hasPlaceholderNormal := false

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		r.lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || tokens[0] == "#" {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVec3(tokens)
			if err != nil {
				return r.emitError(err.Error())
			}
			r.positions = append(r.positions, v)
		case "vn":
			v, err := parseVec3(tokens)
			if err != nil {
				return r.emitError(err.Error())
			}
			r.normals = append(r.normals, v)
		case "f":
			if len(r.normals) == 0 && !hasPlaceholderNormal {
				r.normals = append(r.normals, types.Vec3{0, 0, 0})
				hasPlaceholderNormal = true
			}
			corners, err := r.parseFace(tokens)
			if err != nil {
				return r.emitError(err.Error())
			}
			r.corners = append(r.corners, corners[:]...)
		}
	}

	return scanner.Err()
}

// parseFace parses a triangular face line. Each of the 3 arguments is
// comprised of 1-3 slash-separated indices: vertexIndex[/uvIndex[/normalIndex]].
// Indices start from 1 and may be negative to index off the end of the
// corresponding list. Only the vertex and normal indices are kept.
func (r *wavefrontReader) parseFace(tokens []string) ([3]Corner, error) {
	var out [3]Corner

	if len(tokens) != 4 {
		return out, fmt.Errorf("face must have exactly 3 vertices (triangulate the mesh first); got %d", len(tokens)-1)
	}

	for arg := 0; arg < 3; arg++ {
		parts := strings.Split(tokens[arg+1], "/")
		if parts[0] == "" {
			return out, ErrMalformedFace
		}

		pIdx, err := selectFaceIndex(parts[0], len(r.positions))
		if err != nil {
			return out, fmt.Errorf("vertex index in face argument %d: %w", arg, err)
		}

		nIdx := 0
		if len(parts) >= 3 && parts[2] != "" {
			nIdx, err = selectFaceIndex(parts[2], len(r.normals))
			if err != nil {
				return out, fmt.Errorf("normal index in face argument %d: %w", arg, err)
			}
		}

		out[arg] = Corner{P: uint32(pIdx), N: uint32(nIdx)}
	}

	return out, nil
}

func selectFaceIndex(token string, listLen int) (int, error) {
	index, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return -1, err
	}

	var offset int
	if index < 0 {
		offset = listLen + int(index)
	} else {
		offset = int(index - 1)
	}
	if offset < 0 || offset >= listLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return offset, nil
}

func parseVec3(tokens []string) (types.Vec3, error) {
	if len(tokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for %q; expected 3 arguments; got %d", tokens[0], len(tokens)-1)
	}

	var v types.Vec3
	for i := 1; i <= 3; i++ {
		coord, err := strconv.ParseFloat(tokens[i], 32)
		if err != nil {
			return v, err
		}
		v[i-1] = float32(coord)
	}
	return v, nil
}
