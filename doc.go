// Package curveaxis maps axis positions onto curved plot areas and back. It
// was designed for charts whose X axis follows an arbitrary path, such as
// serpentines and spirals, but it also provides the plain Cartesian case.
//
// # Positions
//
// Every [AxisRenderer] works with positions in [0, 1]. Axis positions cover
// the whole axis, global positions cover the visible window that the
// renderer's [Axis] has been zoomed to. [AxisRenderer.ToGlobalPosition] and
// [AxisRenderer.ToAxisPosition] convert between the two.
//
// # Renderers
//
// [XRenderer] and [YRenderer] lay out an axis along the edges of a
// rectangular plot area.
//
// [CurveXRenderer] lays out an axis along a polyline. Its paired
// [CurveYRenderer] measures positions across the polyline, so that the two
// renderers together describe a ribbon that follows the path. A point on the
// ribbon is found by walking the path to the X position and then offsetting
// along the path's normal by the Y position. The inverse, mapping a point to
// positions, searches a densely resampled copy of the path for the nearest
// sample.
//
// Both curve renderers are created together by [NewCurveRenderers] and only
// reflect the state of the last [CurveXRenderer.UpdateLayout].
//
// # Charts
//
// [CurveChart] owns a pair of curve renderers, their axes and a mask that
// follows the ribbon. [SerpentineChart] and [SpiralChart] generate the path
// from a handful of settings. [CurveCursor], [CurveLineSeries] and
// [CurveColumnSeries] use the renderers to draw on the ribbon.
//
// # Geometry
//
// The package includes the small amount of geometry the renderers need:
// [Point], [Vec2], [Size], [Line], [Rect], [Affine] and [BezPath], a path of
// straight segments.
//
// # Degenerate input
//
// Paths with fewer than two points or without length are not errors. Queries
// return zero values and layouts log a debug message through [Logger].
package curveaxis
