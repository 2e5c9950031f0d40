package render

import (
	"image"
	"image/draw"

	"github.com/retoomey/RAPIO-sub003/projection"
)

// Tile rasterizes one BoundingBox worth of a projection into an RGBA
// image by querying ValueAt once per output pixel -- no GDAL
// reprojection step, since every projection in this module already
// answers point queries directly in the output's geographic frame.
func Tile(proj projection.DataProjection, bbox projection.BoundingBox, colorFn ColorFunc) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bbox.Cols, bbox.Rows))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	for row := 0; row < bbox.Rows; row++ {
		lat := bbox.TopLatDegs + float64(row)*bbox.DeltaLatDegs
		for col := 0; col < bbox.Cols; col++ {
			lon := bbox.LeftLonDegs + float64(col)*bbox.DeltaLonDegs
			v := proj.ValueAt(lat, lon)
			img.Set(col, row, colorFn(v))
		}
	}
	return img
}

// TMSTile rasterizes one z/x/y OpenStreetMap tile for proj, always
// producing a tileSize x tileSize image regardless of the
// projection's native coverage.
func TMSTile(proj projection.DataProjection, z, x, y, tileSize int, colorFn ColorFunc) *image.RGBA {
	nwLat := projection.TileLatDegs(y, z)
	nwLon := projection.TileLonDegs(x, z)
	seLat := projection.TileLatDegs(y+1, z)
	seLon := projection.TileLonDegs(x+1, z)

	bbox := projection.BoundingBox{
		Rows: tileSize, Cols: tileSize,
		TopLatDegs:  nwLat,
		LeftLonDegs: nwLon,
		DeltaLatDegs: (seLat - nwLat) / float64(tileSize),
		DeltaLonDegs: (seLon - nwLon) / float64(tileSize),
	}
	return Tile(proj, bbox, colorFn)
}
