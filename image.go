// Package xgeom converts between the types in [deedles.dev/xgeom/geom]
// and the types of the standard library's image package. The
// conversions live here, outside of geom, so that the geometry itself
// doesn't depend on any particular toolkit's types.
package xgeom

import (
	"image"

	"deedles.dev/xgeom/geom"
)

// FromImageRect converts an image.Rectangle to a geom.Rect.
func FromImageRect(r image.Rectangle) geom.Rect {
	return geom.Rt(
		float32(r.Min.X),
		float32(r.Min.Y),
		float32(r.Max.X),
		float32(r.Max.Y),
	)
}

// ImageRect converts r to an image.Rectangle. Bounds are truncated
// towards zero. r is not normalized first.
func ImageRect(r geom.Rect) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(int(r.Left), int(r.Top)),
		Max: image.Pt(int(r.Right), int(r.Bottom)),
	}
}

// FromImagePoint converts an image.Point to a geom.Point.
func FromImagePoint(p image.Point) geom.Point {
	return geom.Pt(float32(p.X), float32(p.Y))
}

// ImagePoint converts p to an image.Point, truncating towards zero.
func ImagePoint(p geom.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// FromImageSize converts an image.Point holding a width and a height,
// such as the result of image.Rectangle.Size, to a geom.Size.
func FromImageSize(p image.Point) geom.Size {
	return geom.Sz(float32(p.X), float32(p.Y))
}

// ImageSize converts s to an image.Point, truncating towards zero.
func ImageSize(s geom.Size) image.Point {
	return image.Pt(int(s.Width), int(s.Height))
}
