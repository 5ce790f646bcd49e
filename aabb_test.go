package dynbvh

import (
	"testing"

	"github.com/arborix/dynbvh/ray"
	"github.com/arborix/dynbvh/vec3"
)

func TestUnionArea(t *testing.T) {
	a := NewAABB(vec3.New(0, 0, 0), vec3.New(1, 1, 1))
	b := NewAABB(vec3.New(0.5, -1, 0), vec3.New(2, 0.5, 1))

	u := Union(a, b)
	want := NewAABB(vec3.New(0, -1, 0), vec3.New(2, 1, 1))
	if u != want {
		t.Fatalf("Union = %+v, want %+v", u, want)
	}

	if got, want := Area(NewAABB(vec3.New(0, 0, 0), vec3.New(1, 1, 1))), float32(6); got != want {
		t.Errorf("Area of unit cube = %v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	outer := NewAABB(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))
	inner := NewAABB(vec3.New(-0.5, -0.5, -0.5), vec3.New(0.5, 0.5, 0.5))

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
}

func TestOverlaps(t *testing.T) {
	a := NewAABB(vec3.New(0, 0, 0), vec3.New(1, 1, 1))
	b := NewAABB(vec3.New(0.9, 0.9, 0.9), vec3.New(2, 2, 2))
	c := NewAABB(vec3.New(5, 5, 5), vec3.New(6, 6, 6))

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
}

func TestIntersectRay(t *testing.T) {
	box := NewAABB(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))

	r, ok := ray.Between(vec3.New(-5, 0, 0), vec3.New(5, 0, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if !box.IntersectRay(r) {
		t.Error("ray through origin should hit box")
	}

	miss, ok := ray.Between(vec3.New(-5, 10, 0), vec3.New(5, 10, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if box.IntersectRay(miss) {
		t.Error("ray far above box should not hit")
	}

	// Ray starting inside the box pointing away: exits immediately
	// ahead (t_enter negative, t_exit positive) and still counts as a
	// hit per the spec's t_exit > 0 condition.
	inside, ok := ray.Between(vec3.New(0, 0, 0), vec3.New(5, 0, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if !box.IntersectRay(inside) {
		t.Error("ray starting inside box should hit")
	}

	// Ray pointing away from the box entirely (behind the origin):
	// t_exit <= 0.
	behind, ok := ray.Between(vec3.New(5, 0, 0), vec3.New(10, 0, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if box.IntersectRay(behind) {
		t.Error("ray pointing away from box should not hit")
	}
}

func TestAxisAlignedRaySignedInfinity(t *testing.T) {
	box := NewAABB(vec3.New(-1, -1, -1), vec3.New(1, 1, 1))
	// Ray travelling exactly along X: Y and Z components of direction
	// are zero, so InvDir's Y/Z are signed infinities. The slab test
	// must still correctly report a hit for a ray through the box.
	r, ok := ray.Between(vec3.New(-5, 0, 0), vec3.New(5, 0, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if !box.IntersectRay(r) {
		t.Error("axis-aligned ray through box should hit")
	}

	rMiss, ok := ray.Between(vec3.New(-5, 5, 0), vec3.New(5, 5, 0))
	if !ok {
		t.Fatal("ray should be valid")
	}
	if box.IntersectRay(rMiss) {
		t.Error("axis-aligned ray missing box should not hit")
	}
}
