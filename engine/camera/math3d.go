package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// V3 builds a vector
func V3(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

// RotateAboutAxis rotates v by angle degrees about axis (right-handed,
// counter-clockwise when looking down the axis toward the origin)
func RotateAboutAxis(v mgl32.Vec3, angleDeg float32, axis mgl32.Vec3) mgl32.Vec3 {
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize())
	return rot.Mul4x1(v.Vec4(0)).Vec3()
}

// TransformPoint transforms a point (w=1) and returns homogeneous coords
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return m.Mul4x1(p.Vec4(1))
}

// TranslateScale returns T(t)·S(s), a unit cube placed at t and scaled by s
func TranslateScale(t, s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(t.X(), t.Y(), t.Z()).Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v.X()) && finite(v.Y()) && finite(v.Z())
}

// parallel reports whether a and b are parallel or anti-parallel
func parallel(a, b mgl32.Vec3) bool {
	return a.Cross(b).Len() <= epsilon*a.Len()*b.Len()
}
