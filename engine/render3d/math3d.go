package render3d

import "github.com/go-gl/mathgl/mgl32"

// clipVertex is a vertex in homogeneous clip space
type clipVertex struct {
	Pos   mgl32.Vec4
	UV    mgl32.Vec2
	Shade float32
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		Pos:   a.Pos.Add(b.Pos.Sub(a.Pos).Mul(t)),
		UV:    a.UV.Add(b.UV.Sub(a.UV).Mul(t)),
		Shade: a.Shade + (b.Shade-a.Shade)*t,
	}
}

// nearDist is the signed distance to the near plane; inside when >= 0
func nearDist(v clipVertex) float32 { return v.Pos.Z() + v.Pos.W() }

// clipNear clips a convex polygon against the near plane (Sutherland-Hodgman).
// dst is reused; the result has 0, 3 or 4 vertices for a triangle input.
func clipNear(dst, poly []clipVertex) []clipVertex {
	dst = dst[:0]
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		dc, dn := nearDist(cur), nearDist(next)
		if dc >= 0 {
			dst = append(dst, cur)
		}
		if (dc >= 0) != (dn >= 0) {
			dst = append(dst, lerpClip(cur, next, dc/(dc-dn)))
		}
	}
	return dst
}

// outsideFrustum reports whether every vertex lies beyond the same side
// plane or the far plane
func outsideFrustum(vs [3]clipVertex) bool {
	var left, right, bottom, top, far int
	for _, v := range vs {
		x, y, z, w := v.Pos.X(), v.Pos.Y(), v.Pos.Z(), v.Pos.W()
		if x < -w {
			left++
		}
		if x > w {
			right++
		}
		if y < -w {
			bottom++
		}
		if y > w {
			top++
		}
		if z > w {
			far++
		}
	}
	return left == 3 || right == 3 || bottom == 3 || top == 3 || far == 3
}
