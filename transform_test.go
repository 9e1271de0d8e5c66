package burning

import (
	"math"
	"testing"
)

func TestTangentLightFollowsSurface(t *testing.T) {
	var tr transformer
	tr.init()
	tr.m[TransformWorld] = Scale(4, 1, 1)
	tr.lights = []Light{{Type: LightDirectional, Direction: V3(-4, -1, 0)}}
	tr.update()

	// The tangent (1,1,0) scales to (4,1,0), which faces the light.
	v := Vertex{Tangent: V3(1, 1, 0), Binormal: V3(0, 0, 1)}
	got := tr.tangentLight(V3(0, 0, 0), V3(0, 0, 1), &v, VertexTangents)
	want := V3(1, 0, 0)
	for i, c := range [][2]float32{{got.X, want.X}, {got.Y, want.Y}, {got.Z, want.Z}} {
		if math.Abs(float64(c[0]-c[1])) > 1e-5 {
			t.Fatalf("component %d of %v, want %v", i, got, want)
		}
	}
}

func TestTangentLightWithoutTangents(t *testing.T) {
	var tr transformer
	tr.init()
	tr.update()
	v := Vertex{}
	if got := tr.tangentLight(V3(0, 0, 0), V3(0, 0, 1), &v, VertexStandard); got != V3(0, 0, 1) {
		t.Errorf("tangentLight = %v, want the normal", got)
	}
}
