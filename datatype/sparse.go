package datatype

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// sparseThreshold is unused directly (callers decide when to sparsify)
// but documents the ratio below which RAPIO's producers choose sparse
// encoding over dense.
const sparseThreshold = 0.75

// PreWriteSparse2D run-length-encodes a 2-D primary array (outer x,
// inner y scan order), replacing it with pixel_x/pixel_y/pixel_count
// parallel arrays plus a compacted primary. A no-op if already sparse.
func (g *DataGrid) PreWriteSparse2D() error {
	if g.HaveArrayName("pixel_x") {
		return nil
	}
	primary, ok := g.GetNode(PrimaryName)
	if !ok {
		return newErr(ErrArrayRefMissing, "PreWriteSparse2D", nil)
	}
	shape := primary.Shape()
	if len(shape) != 2 {
		return newErr(ErrArrayRefMissing, "PreWriteSparse2D", nil)
	}
	sizeX, sizeY := shape[0], shape[1]
	arr := primary.Array()

	neededPixels := 0
	started := false
	lastValue := 0.0
	for x := 0; x < sizeX; x++ {
		for y := 0; y < sizeY; y++ {
			v := arr.GetF64(x*sizeY + y)
			if v == MissingData {
				started = false
				continue
			}
			if !started || v != lastValue {
				neededPixels++
				started = true
				lastValue = v
			}
		}
	}

	comprRatio := float64(3*neededPixels) / float64(sizeX*sizeY)
	logrus.Infof("sparse2D: %d runs, compression %.1f%%", neededPixels, comprRatio*100)

	pixelDim := g.AddDim("pixel", neededPixels)
	if err := g.ChangeArrayName(PrimaryName, "DisabledPrimary"); err != nil {
		return err
	}
	g.SetVisible("DisabledPrimary", false)
	disabled, _ := g.GetNode("DisabledPrimary")

	newPrimary, err := g.AddArray(PrimaryName, primary.Units, primary.Type, []int{pixelDim})
	if err != nil {
		return err
	}
	pixelX, _ := g.AddArray("pixel_x", "", Short, []int{pixelDim})
	pixelY, _ := g.AddArray("pixel_y", "", Short, []int{pixelDim})
	pixelCount, _ := g.AddArray("pixel_count", "", Int, []int{pixelDim})

	at := -1
	started = false
	lastValue = 0.0
	for x := 0; x < sizeX; x++ {
		for y := 0; y < sizeY; y++ {
			v := disabled.Array().GetF64(x*sizeY + y)
			if v == MissingData {
				started = false
				continue
			}
			if started && v == lastValue {
				pixelCount.Array().SetF64(at, pixelCount.Array().GetF64(at)+1)
				continue
			}
			at++
			pixelX.Array().SetF64(at, float64(x))
			pixelY.Array().SetF64(at, float64(y))
			newPrimary.Array().SetF64(at, v)
			pixelCount.Array().SetF64(at, 1)
			started = true
			lastValue = v
		}
	}

	newPrimary.Attributes["missing_value"] = float64(MissingData)
	newPrimary.Attributes["BackgroundValue"] = float64(MissingData)
	newPrimary.Attributes["SparseGridCompression"] = comprRatio
	newPrimary.Attributes["NumValidRuns"] = int64(neededPixels)
	g.TypeName = "Sparse" + g.TypeName
	return nil
}

// PostReadUnsparse2D expands a sparse-form primary (as just decoded
// off the wire) back into a dense 2-D array. A no-op if the grid is
// not in sparse form.
func (g *DataGrid) PostReadUnsparse2D() error {
	if !g.HaveArrayName("pixel_x") {
		return nil
	}
	if len(g.Dims) < 2 {
		return newErr(ErrCorruptSparseData, "PostReadUnsparse2D", nil)
	}
	sizeX, sizeY := g.Dims[0].Size, g.Dims[1].Size

	sparsePrimary, _ := g.GetNode(PrimaryName)
	background := MissingData
	if bv, ok := sparsePrimary.Attributes["BackgroundValue"].(float64); ok {
		background = bv
	}
	pixelX, _ := g.GetNode("pixel_x")
	pixelY, _ := g.GetNode("pixel_y")
	pixelCount, _ := g.GetNode("pixel_count")
	numPixels := pixelX.Array().Len()

	if numPixels > sizeX*sizeY {
		logrus.Errorf("sparse grid advertises %d pixels, larger than %dx%d dense shape", numPixels, sizeX, sizeY)
		return newErr(ErrCorruptSparseData, "PostReadUnsparse2D", nil)
	}

	if err := g.ChangeArrayName(PrimaryName, "SparseData"); err != nil {
		return err
	}
	sparseData, _ := g.GetNode("SparseData")

	dense, err := g.AddArray(PrimaryName, sparsePrimary.Units, sparsePrimary.Type, []int{0, 1}, background)
	if err != nil {
		return err
	}

	for i := 0; i < numPixels; i++ {
		x := int(pixelX.Array().GetF64(i))
		y := int(pixelY.Array().GetF64(i))
		v := sparseData.Array().GetF64(i)
		count := int(pixelCount.Array().GetF64(i))
		for k := 0; k < count; k++ {
			dense.Array().SetF64(x*sizeY+y, v)
			y++
			if y == sizeY {
				y = 0
				x++
			}
		}
	}

	g.TypeName = strings.TrimPrefix(g.TypeName, "Sparse")
	g.DeleteArrayName("SparseData")
	g.DeleteArrayName("pixel_x")
	g.DeleteArrayName("pixel_y")
	g.DeleteArrayName("pixel_count")
	g.DropLastDim()
	return nil
}

// UnsparseRestore undoes PreWriteSparse2D without ever having gone
// through the wire: it discards the sparse arrays and restores
// DisabledPrimary, leaving every other array and every attribute
// untouched. A no-op unless the grid's type name carries the "Sparse"
// prefix.
func (g *DataGrid) UnsparseRestore() {
	if !strings.HasPrefix(g.TypeName, "Sparse") {
		return
	}
	g.DeleteArrayName(PrimaryName)
	g.DeleteArrayName("pixel_x")
	g.DeleteArrayName("pixel_y")
	g.DeleteArrayName("pixel_count")
	g.DropLastDim()
	if g.HaveArrayName("DisabledPrimary") {
		g.ChangeArrayName("DisabledPrimary", PrimaryName)
		g.SetVisible(PrimaryName, true)
	}
	g.TypeName = strings.TrimPrefix(g.TypeName, "Sparse")
}

// PreWriteSparse3D is the 3-D analogue of PreWriteSparse2D (outer z,
// middle x, inner y scan order), used by LatLonHeightGrid.
func (g *DataGrid) PreWriteSparse3D() error {
	if g.HaveArrayName("pixel_x") {
		return nil
	}
	primary, ok := g.GetNode(PrimaryName)
	if !ok {
		return newErr(ErrArrayRefMissing, "PreWriteSparse3D", nil)
	}
	shape := primary.Shape()
	if len(shape) != 3 {
		return newErr(ErrArrayRefMissing, "PreWriteSparse3D", nil)
	}
	sizeZ, sizeX, sizeY := shape[0], shape[1], shape[2]
	arr := primary.Array()

	flat := func(z, x, y int) int { return (z*sizeX+x)*sizeY + y }

	neededPixels := 0
	started := false
	lastValue := 0.0
	for z := 0; z < sizeZ; z++ {
		for x := 0; x < sizeX; x++ {
			for y := 0; y < sizeY; y++ {
				v := arr.GetF64(flat(z, x, y))
				if v == MissingData {
					started = false
					continue
				}
				if !started || v != lastValue {
					neededPixels++
					started = true
					lastValue = v
				}
			}
		}
	}

	comprRatio := float64(4*neededPixels) / float64(sizeZ*sizeX*sizeY)
	logrus.Infof("sparse3D: %d runs, compression %.1f%%", neededPixels, comprRatio*100)

	pixelDim := g.AddDim("pixel", neededPixels)
	if err := g.ChangeArrayName(PrimaryName, "DisabledPrimary"); err != nil {
		return err
	}
	g.SetVisible("DisabledPrimary", false)
	disabled, _ := g.GetNode("DisabledPrimary")

	newPrimary, err := g.AddArray(PrimaryName, primary.Units, primary.Type, []int{pixelDim})
	if err != nil {
		return err
	}
	pixelZ, _ := g.AddArray("pixel_z", "", Short, []int{pixelDim})
	pixelX, _ := g.AddArray("pixel_x", "", Short, []int{pixelDim})
	pixelY, _ := g.AddArray("pixel_y", "", Short, []int{pixelDim})
	pixelCount, _ := g.AddArray("pixel_count", "", Int, []int{pixelDim})

	at := -1
	started = false
	lastValue = 0.0
	for z := 0; z < sizeZ; z++ {
		for x := 0; x < sizeX; x++ {
			for y := 0; y < sizeY; y++ {
				v := disabled.Array().GetF64(flat(z, x, y))
				if v == MissingData {
					started = false
					continue
				}
				if started && v == lastValue {
					pixelCount.Array().SetF64(at, pixelCount.Array().GetF64(at)+1)
					continue
				}
				at++
				pixelZ.Array().SetF64(at, float64(z))
				pixelX.Array().SetF64(at, float64(x))
				pixelY.Array().SetF64(at, float64(y))
				newPrimary.Array().SetF64(at, v)
				pixelCount.Array().SetF64(at, 1)
				started = true
				lastValue = v
			}
		}
	}

	newPrimary.Attributes["missing_value"] = float64(MissingData)
	newPrimary.Attributes["BackgroundValue"] = float64(MissingData)
	newPrimary.Attributes["SparseGridCompression"] = comprRatio
	newPrimary.Attributes["NumValidRuns"] = int64(neededPixels)
	g.TypeName = "Sparse" + g.TypeName
	return nil
}

// PostReadUnsparse3D is the 3-D analogue of PostReadUnsparse2D.
func (g *DataGrid) PostReadUnsparse3D() error {
	if !g.HaveArrayName("pixel_x") {
		return nil
	}
	if len(g.Dims) < 3 {
		return newErr(ErrCorruptSparseData, "PostReadUnsparse3D", nil)
	}
	sizeZ, sizeX, sizeY := g.Dims[0].Size, g.Dims[1].Size, g.Dims[2].Size
	flat := func(z, x, y int) int { return (z*sizeX+x)*sizeY + y }

	sparsePrimary, _ := g.GetNode(PrimaryName)
	background := MissingData
	if bv, ok := sparsePrimary.Attributes["BackgroundValue"].(float64); ok {
		background = bv
	}
	pixelZ, _ := g.GetNode("pixel_z")
	pixelX, _ := g.GetNode("pixel_x")
	pixelY, _ := g.GetNode("pixel_y")
	pixelCount, _ := g.GetNode("pixel_count")
	numPixels := pixelX.Array().Len()

	if numPixels > sizeZ*sizeX*sizeY {
		return newErr(ErrCorruptSparseData, "PostReadUnsparse3D", nil)
	}

	if err := g.ChangeArrayName(PrimaryName, "SparseData"); err != nil {
		return err
	}
	sparseData, _ := g.GetNode("SparseData")

	dense, err := g.AddArray(PrimaryName, sparsePrimary.Units, sparsePrimary.Type, []int{0, 1, 2}, background)
	if err != nil {
		return err
	}

	for i := 0; i < numPixels; i++ {
		z := int(pixelZ.Array().GetF64(i))
		x := int(pixelX.Array().GetF64(i))
		y := int(pixelY.Array().GetF64(i))
		v := sparseData.Array().GetF64(i)
		count := int(pixelCount.Array().GetF64(i))
		for k := 0; k < count; k++ {
			dense.Array().SetF64(flat(z, x, y), v)
			y++
			if y == sizeY {
				y = 0
				x++
				if x == sizeX {
					x = 0
					z++
				}
			}
		}
	}

	g.TypeName = strings.TrimPrefix(g.TypeName, "Sparse")
	g.DeleteArrayName("SparseData")
	g.DeleteArrayName("pixel_z")
	g.DeleteArrayName("pixel_x")
	g.DeleteArrayName("pixel_y")
	g.DeleteArrayName("pixel_count")
	g.DropLastDim()
	return nil
}
