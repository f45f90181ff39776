package mesh

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/larkspur-gfx/meshbvh/types"
)

func writeTempObj(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const triangleObj = `
# a single triangle with an explicit normal
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	if _, err := Load("mesh.stl"); err != ErrUnsupportedFormat {
		t.Fatalf("err = %v; want ErrUnsupportedFormat", err)
	}
}

func TestLoadParsesLocalFile(t *testing.T) {
	path := writeTempObj(t, triangleObj)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if g.FaceCount() != 1 {
		t.Fatalf("FaceCount() = %d; want 1", g.FaceCount())
	}

	v0, v1, v2 := g.FacePositions(0)
	want := [3]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if v0 != want[0] || v1 != want[1] || v2 != want[2] {
		t.Fatalf("FacePositions(0) = %v,%v,%v; want %v", v0, v1, v2, want)
	}

	n0, n1, n2 := g.FaceNormals(0)
	if n0 != (types.Vec3{0, 0, 1}) || n1 != n0 || n2 != n0 {
		t.Fatalf("FaceNormals(0) = %v,%v,%v; want all {0,0,1}", n0, n1, n2)
	}
}

func TestLoadSynthesizesPlaceholderNormalWhenMissing(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(g.Normals) != 1 {
		t.Fatalf("len(Normals) = %d; want 1 (the synthesized placeholder)", len(g.Normals))
	}
	n0, _, _ := g.FaceNormals(0)
	if n0 != (types.Vec3{}) {
		t.Fatalf("placeholder normal = %v; want the zero vector", n0)
	}
}

func TestLoadRejectsNonTriangularFace(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a quad face")
	}
}

func TestLoadRejectsMalformedFace(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f //1 2//1 3//1
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a face argument missing its vertex index")
	}
}

func TestLoadRejectsEmptyGeometry(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
`)
	if _, err := Load(path); err != ErrEmptyGeometry {
		t.Fatalf("err = %v; want ErrEmptyGeometry", err)
	}
}

func TestLoadNegativeFaceIndices(t *testing.T) {
	path := writeTempObj(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f -3//-1 -2//-1 -1//-1
`)
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	v0, v1, v2 := g.FacePositions(0)
	want := [3]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if v0 != want[0] || v1 != want[1] || v2 != want[2] {
		t.Fatalf("FacePositions(0) = %v,%v,%v; want %v", v0, v1, v2, want)
	}
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(triangleObj))
	}))
	defer srv.Close()

	g, err := Load(srv.URL + "/mesh.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.FaceCount() != 1 {
		t.Fatalf("FaceCount() = %d; want 1", g.FaceCount())
	}
}

func TestLoadOverHTTPPropagatesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Load(srv.URL + "/missing.obj"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestSelectFaceIndex(t *testing.T) {
	cases := []struct {
		token   string
		listLen int
		want    int
		wantErr bool
	}{
		{"1", 3, 0, false},
		{"3", 3, 2, false},
		{"-1", 3, 2, false},
		{"-3", 3, 0, false},
		{"4", 3, 0, true},
		{"0", 3, 0, true},
		{"-4", 3, 0, true},
		{"abc", 3, 0, true},
	}

	for _, c := range cases {
		got, err := selectFaceIndex(c.token, c.listLen)
		if c.wantErr {
			if err == nil {
				t.Errorf("selectFaceIndex(%q, %d): expected an error", c.token, c.listLen)
			}
			continue
		}
		if err != nil {
			t.Errorf("selectFaceIndex(%q, %d): unexpected error: %v", c.token, c.listLen, err)
			continue
		}
		if got != c.want {
			t.Errorf("selectFaceIndex(%q, %d) = %d; want %d", c.token, c.listLen, got, c.want)
		}
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3([]string{"v", "1.5", "-2", "0.25"})
	if err != nil {
		t.Fatalf("parseVec3: %v", err)
	}
	want := types.Vec3{1.5, -2, 0.25}
	if v != want {
		t.Fatalf("parseVec3 = %v; want %v", v, want)
	}

	if _, err := parseVec3([]string{"v", "1", "2"}); err == nil {
		t.Fatal("expected an error for too few arguments")
	}
}
