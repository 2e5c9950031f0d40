package datatype

import (
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

// PrimaryName is the conventional node name whose units double as the
// DataGrid's own units.
const PrimaryName = "primary"

// DimensionEntry names and sizes one axis shared by any number of
// DataArray nodes.
type DimensionEntry struct {
	Name string
	Size int
}

// DataGrid is a named collection of DataArray nodes sharing one
// dimension-entry sequence. RadialSet and LatLonHeightGrid embed a
// DataGrid and add their own fixed fields on top (composition,
// per the design note against deep inheritance).
type DataGrid struct {
	TypeName string
	DataTime rtime.Time
	Location geom.LLH
	Units    string

	Dims  []DimensionEntry
	nodes []*DataArray
	index map[string]int
}

// NewDataGrid constructs an empty DataGrid with the given type name,
// time, location, and dimension table.
func NewDataGrid(typeName string, t rtime.Time, loc geom.LLH, dims []DimensionEntry) *DataGrid {
	return &DataGrid{
		TypeName: typeName,
		DataTime: t,
		Location: loc,
		Dims:     append([]DimensionEntry(nil), dims...),
		index:    map[string]int{},
	}
}

func (g *DataGrid) shapeFor(dimIndexes []int) ([]int, error) {
	shape := make([]int, len(dimIndexes))
	for i, di := range dimIndexes {
		if di < 0 || di >= len(g.Dims) {
			return nil, newErr(ErrDimensionIndexOutOfRange, "AddArray", nil)
		}
		shape[i] = g.Dims[di].Size
	}
	return shape, nil
}

// AddArray creates (or, if name already exists, replaces in place) a
// named array of the given element type, dimensioned by dimIndexes
// (indices into g.Dims), optionally filled with fillValue.
func (g *DataGrid) AddArray(name, units string, et ElementType, dimIndexes []int, fillValue ...float64) (*DataArray, error) {
	shape, err := g.shapeFor(dimIndexes)
	if err != nil {
		return nil, err
	}
	node := newDataArray(name, units, et, dimIndexes, shape)
	if len(fillValue) > 0 {
		node.arr.Fill(fillValue[0])
	}
	if name == PrimaryName {
		g.Units = units
	}
	if i, ok := g.index[name]; ok {
		g.nodes[i] = node
		return node, nil
	}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, node)
	return node, nil
}

// HaveArrayName reports whether a node with the given name exists.
func (g *DataGrid) HaveArrayName(name string) bool {
	_, ok := g.index[name]
	return ok
}

// GetNode returns the named node, or nil and false if absent.
func (g *DataGrid) GetNode(name string) (*DataArray, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// Nodes returns the nodes in storage order (skipping none): insertion
// order, except that DeleteArrayName moves the last node into the
// deleted node's slot.
func (g *DataGrid) Nodes() []*DataArray { return g.nodes }

// ChangeArrayName renames a node; fails with ErrNameCollision if
// newName already names a node.
func (g *DataGrid) ChangeArrayName(oldName, newName string) error {
	if g.HaveArrayName(newName) {
		return newErr(ErrNameCollision, "ChangeArrayName", nil)
	}
	i, ok := g.index[oldName]
	if !ok {
		return newErr(ErrArrayRefMissing, "ChangeArrayName", nil)
	}
	delete(g.index, oldName)
	g.nodes[i].Name = newName
	g.index[newName] = i
	return nil
}

// DeleteArrayName removes a node by unordered swap-pop, O(1).
func (g *DataGrid) DeleteArrayName(name string) bool {
	i, ok := g.index[name]
	if !ok {
		return false
	}
	last := len(g.nodes) - 1
	g.nodes[i] = g.nodes[last]
	g.index[g.nodes[i].Name] = i
	g.nodes = g.nodes[:last]
	delete(g.index, name)
	return true
}

// SetVisible toggles the hidden attribute on the named node so
// encoders include or skip it.
func (g *DataGrid) SetVisible(name string, visible bool) {
	if n, ok := g.GetNode(name); ok {
		n.SetHidden(!visible)
	}
}

// SetDimSize changes one dimension's size and resizes every node that
// references it, per the DataGrid invariant.
func (g *DataGrid) SetDimSize(dimIndex, newSize int) {
	g.Dims[dimIndex].Size = newSize
	for _, n := range g.nodes {
		referencesDim := false
		for _, di := range n.DimIndexes {
			if di == dimIndex {
				referencesDim = true
				break
			}
		}
		if !referencesDim {
			continue
		}
		shape, err := g.shapeFor(n.DimIndexes)
		if err != nil {
			continue
		}
		n.Resize(shape)
	}
}

// AddDim appends a new dimension entry and returns its index.
func (g *DataGrid) AddDim(name string, size int) int {
	g.Dims = append(g.Dims, DimensionEntry{Name: name, Size: size})
	return len(g.Dims) - 1
}

// DropLastDim removes the final dimension entry, used when unsparsing
// restores a grid to its pre-sparse dimension count.
func (g *DataGrid) DropLastDim() {
	if len(g.Dims) > 0 {
		g.Dims = g.Dims[:len(g.Dims)-1]
	}
}

// SetUnits sets the DataGrid's top-level units, and aliases them onto
// the primary node when present (RAPIO's rDataGrid::setUnits).
func (g *DataGrid) SetUnits(units string) {
	g.Units = units
	if n, ok := g.GetNode(PrimaryName); ok {
		n.Units = units
	}
}
