package timeline

// Package timeline implements the geometry of a timeline container: measuring
// children under host constraints, stacking them along one axis, computing the
// marker positions, emitting line and circle draw calls, and turning pointer
// drags into a scroll offset with optional fling momentum. It knows nothing
// about widgets; hosts adapt their objects to Child and their surface to Canvas.
