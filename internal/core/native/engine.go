package native

// PlaneEngine is the external engine that owns plane objects and their
// delegates. Every call is synchronous.
//
// Callers must allocate a plane before its delegate and release the delegate
// before the plane. Behavior on handles that were already released is up to
// the engine.
type PlaneEngine interface {
	CreatePlane(minWidth, minHeight float32) (Handle[Plane], error)
	DestroyPlane(plane Handle[Plane])

	CreatePlaneDelegate(plane Handle[Plane]) (Handle[PlaneDelegate], error)
	DestroyPlaneDelegate(delegate Handle[PlaneDelegate])

	SetMinWidth(plane Handle[Plane], minWidth float32)
	SetMinHeight(plane Handle[Plane], minHeight float32)
}
