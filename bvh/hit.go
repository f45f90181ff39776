package bvh

// HitRecord carries a query's result. The caller initializes Dist to the
// ray's TMax before calling Traverse; on return, Hit reports whether any
// triangle was struck, and the remaining fields are defined iff Hit is
// true. U and V are barycentric weights satisfying U >= 0, V >= 0,
// U+V <= 1; the caller derives W = 1 - U - V.
type HitRecord struct {
	Hit    bool
	Dist   float32
	U, V   float32
	FaceID int32
}
