// Package sandtrack computes tracks for sand tables: devices that drag a
// ball through sand with a rotating arm and a carriage moving along it.
//
// Such a device can natively trace exactly one kind of path. Both motors
// move at a constant speed ratio between two points, which draws an
// arithmetic spiral ρ = mθ + b. A track is therefore a list of vertices in
// polar coordinates, joined by spirals. This package approximates arbitrary
// artwork with as few such vertices as possible, keeping the drawn path
// within a fixed tolerance of the desired one.
//
// # Positions and winding
//
// [Position] describes a location on the table in normalized coordinates:
// the table center is the origin and the rim has radius 1. Because the arm
// can rotate without limit, theta is not wrapped. A position therefore also
// knows how many revolutions separate it from the first, and two positions
// at the same Cartesian location can be different positions. This
// matters: the winding of two consecutive vertices decides which way the
// arm turns between them.
//
// Positions are created with [Polar], [Cartesian] and [CartesianTurns].
// Moving a position by a Cartesian offset, with [Position.FromDeltaXY] or
// [Position.Offset], keeps track of crossings of the negative x axis, which
// is where the wrapped angle jumps between π and −π.
//
// [Point] is a plain vector without winding, for composing shapes.
//
// # Lines
//
// [Line] describes paths that can be sampled point by point, with a bounded
// distance between consecutive points. This package includes the following
// lines:
//   - [StraightLine]
//   - [CircularArc]
//   - [ArithmeticSpiral]
//   - [CubicBezierCurve]
//   - [ArbitraryLine]
//
// Use [Points] or [Positions] to sample a line.
//
// # Fitting
//
// [Fit] turns a dense polyline into the vertex list of a chain of spirals,
// such that every input point is within a tolerance of the chain. The
// fitter extends each spiral as far as possible with a binary search over
// the input points, and tests each candidate with closed-form shortcuts
// and a subdivision search for the spiral's closest approach.
//
// # Drawings
//
// [Drawing] is what pattern programs use. It keeps a current position, a
// heading and a [Transform] from pattern space to the table, and appends
// the fitted vertices of every line it draws. Its tolerance and sample
// spacing come from a [Config], which describes the physical table.
//
// The subpackages write tracks to files (thr), render previews (raster)
// and provide ready-made patterns (patterns).
package sandtrack
