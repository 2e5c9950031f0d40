package datatype

// HiddenAttribute is the attribute key an encoder checks to decide
// whether to skip emitting a node, set by SetVisible(name, false).
const HiddenAttribute = "RAPIO_HIDDEN"

// DataArray is a named handle holding exactly one Array, plus the
// bookkeeping a DataGrid needs to resize and relocate it: the element
// type tag, the ordered list of dimension indices into the owner's
// dimension table, an attribute list, and a visibility flag.
type DataArray struct {
	Name       string
	Units      string
	Type       ElementType
	DimIndexes []int
	Attributes map[string]any

	arr Array
}

func newDataArray(name, units string, et ElementType, dimIndexes []int, shape []int) *DataArray {
	return &DataArray{
		Name:       name,
		Units:      units,
		Type:       et,
		DimIndexes: append([]int(nil), dimIndexes...),
		Attributes: map[string]any{},
		arr:        newArrayForType(et, shape),
	}
}

func newArrayForType(et ElementType, shape []int) Array {
	switch et {
	case Byte:
		return NewTypedArray[int8](shape)
	case Short:
		return NewTypedArray[int16](shape)
	case Int:
		return NewTypedArray[int32](shape)
	case Float:
		return NewTypedArray[float32](shape)
	default:
		return NewTypedArray[float64](shape)
	}
}

// Array returns the type-erased array view.
func (n *DataArray) Array() Array { return n.arr }

// Hidden reports whether the node carries the hidden attribute,
// meaning encoders must skip it.
func (n *DataArray) Hidden() bool {
	v, ok := n.Attributes[HiddenAttribute]
	return ok && v == true
}

// SetHidden toggles the hidden attribute directly on the node.
func (n *DataArray) SetHidden(hidden bool) {
	if hidden {
		n.Attributes[HiddenAttribute] = true
	} else {
		delete(n.Attributes, HiddenAttribute)
	}
}

// Shape returns the node's array shape.
func (n *DataArray) Shape() []int { return n.arr.Shape() }

// Resize reallocates the node's backing array to the given shape.
func (n *DataArray) Resize(shape []int) { n.arr.Resize(shape) }

// TypedFloat64 returns the concrete *TypedArray[float64] for this
// node, and false if the node does not hold double-precision data.
func TypedFloat64(n *DataArray) (*TypedArray[float64], bool) {
	t, ok := n.arr.(*TypedArray[float64])
	return t, ok
}

// TypedFloat32 returns the concrete *TypedArray[float32] for this node.
func TypedFloat32(n *DataArray) (*TypedArray[float32], bool) {
	t, ok := n.arr.(*TypedArray[float32])
	return t, ok
}

// TypedInt16 returns the concrete *TypedArray[int16] for this node.
func TypedInt16(n *DataArray) (*TypedArray[int16], bool) {
	t, ok := n.arr.(*TypedArray[int16])
	return t, ok
}

// TypedInt32 returns the concrete *TypedArray[int32] for this node.
func TypedInt32(n *DataArray) (*TypedArray[int32], bool) {
	t, ok := n.arr.(*TypedArray[int32])
	return t, ok
}
