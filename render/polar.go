package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// PolarImageOptions configures PolarImage's output.
type PolarImageOptions struct {
	SizePx       int
	RangeKMs     float64 // ground range the SizePx/2 radius covers
	Label        string  // drawn bottom-right when non-empty
	ColorFunc    ColorFunc
}

// PolarImage rasterizes one RadialSet as a top-down polar sweep,
// drawing each gate as an arc stroke the width of its gate spacing --
// the same construction the moment-specific render loop in the
// donor's nexrad-render/l2serv tools used, generalized here to any
// decoded RadialSet/ColorFunc pair instead of one hardcoded to
// archive2's Message31 layout.
func PolarImage(rs *datatype.RadialSet, opts PolarImageOptions) *image.RGBA {
	width := float64(opts.SizePx)
	height := float64(opts.SizePx)

	canvas := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(canvas)

	xc := width / 2
	yc := height / 2
	pxPerKm := width / 2 / opts.RangeKMs

	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	gateWidthNode, _ := rs.GetNode("GateWidth")
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	azimuth := azimuthNode.Array()
	beamWidth := beamWidthNode.Array()
	gateWidth := gateWidthNode.Array()
	primary := primaryNode.Array()

	numRadials := rs.NumRadials()
	numGates := rs.NumGates()
	firstGatePx := rs.DistToFirstGateM / 1000.0 * pxPerKm

	for r := 0; r < numRadials; r++ {
		azDegs := azimuth.GetF64(r)
		bwDegs := beamWidth.GetF64(r)
		gwKMs := gateWidth.GetF64(r) / 1000.0
		gwPx := gwKMs * pxPerKm

		startAngle := azDegs * (math.Pi / 180.0)
		endAngle := bwDegs * (math.Pi / 180.0)

		distance := firstGatePx
		gc.SetLineWidth(gwPx + 1)
		gc.SetLineCap(draw2d.ButtCap)

		for g := 0; g < numGates; g++ {
			v := primary.GetF64(r*numGates + g)
			if datatype.IsGood(v) {
				gc.MoveTo(xc+math.Cos(startAngle)*distance, yc+math.Sin(startAngle)*distance)
				switch g {
				case 0:
					gc.ArcTo(xc, yc, distance, distance, startAngle-0.001, endAngle+0.001)
				case numGates - 1:
					gc.ArcTo(xc, yc, distance, distance, startAngle, endAngle)
				default:
					gc.ArcTo(xc, yc, distance, distance, startAngle, endAngle+0.001)
				}
				gc.SetStrokeColor(opts.ColorFunc(v))
				gc.Stroke()
			}
			distance += gwPx
		}
	}

	if opts.Label != "" {
		drawLabel(canvas, int(width)-495, int(height)-10, opts.Label)
	}
	return canvas
}

func drawLabel(img *image.RGBA, x, y int, label string) {
	point := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.Gray),
		Face: inconsolata.Bold8x16,
		Dot:  point,
	}
	d.DrawString(label)
}
