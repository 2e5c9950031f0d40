package datatype

import "fmt"

// ErrorKind enumerates the data-error taxonomy raised by DataGrid
// mutation, sparse encode/decode, and the codecs built on top of it.
// These never panic the process; every producing operation returns
// one through a normal error-valued return.
type ErrorKind int

const (
	// ErrDimensionIndexOutOfRange: adding an array whose dim index
	// exceeds the current dimension count.
	ErrDimensionIndexOutOfRange ErrorKind = iota
	// ErrNameCollision: renaming to an already-existing array name.
	ErrNameCollision
	// ErrArrayRefMissing: a typed reference was requested for an
	// array not present on the node.
	ErrArrayRefMissing
	// ErrCorruptSparseData: num_pixels exceeds the advertised dense
	// shape during unsparse.
	ErrCorruptSparseData
	// ErrInvalidBlockDivider: a NIDS block is missing its -1 marker.
	ErrInvalidBlockDivider
	// ErrCorruptNIDSLength: the message length field disagrees with
	// the stream length.
	ErrCorruptNIDSLength
	// ErrNullProductUnsupported: the NIDS product code is in the
	// null-product set, or its radial packet code is 1.
	ErrNullProductUnsupported
	// ErrXDRPacketUnsupported: radial packet code 28.
	ErrXDRPacketUnsupported
	// ErrUnsupportedPacketCode: any radial packet code other than
	// 1, 16, 28, or 0xAF1F.
	ErrUnsupportedPacketCode
	// ErrBZIP2DecodeFailure: BZIP2 decompression failed.
	ErrBZIP2DecodeFailure
	// ErrThresholdDecodeUnknown: decode-method number outside 1..7
	// (and outside the E1/E2/E3 special-case set). Falls back to method 1.
	ErrThresholdDecodeUnknown
	// ErrProductCodeUnknown: product code absent from the lookup table.
	ErrProductCodeUnknown
	// ErrProjectionOutOfRange: az/range lookup fell outside the
	// lookup table. No code path raises it: GetValueAtAzRange reports
	// an uncovered point through ok=false and DataUnavailable.
	ErrProjectionOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDimensionIndexOutOfRange:
		return "DimensionIndexOutOfRange"
	case ErrNameCollision:
		return "NameCollision"
	case ErrArrayRefMissing:
		return "ArrayRefMissing"
	case ErrCorruptSparseData:
		return "CorruptSparseData"
	case ErrInvalidBlockDivider:
		return "InvalidBlockDivider"
	case ErrCorruptNIDSLength:
		return "CorruptNIDSLength"
	case ErrNullProductUnsupported:
		return "NullProductUnsupported"
	case ErrXDRPacketUnsupported:
		return "XDRPacketUnsupported"
	case ErrUnsupportedPacketCode:
		return "UnsupportedPacketCode"
	case ErrBZIP2DecodeFailure:
		return "BZIP2DecodeFailure"
	case ErrThresholdDecodeUnknown:
		return "ThresholdDecodeUnknown"
	case ErrProductCodeUnknown:
		return "ProductCodeUnknown"
	case ErrProjectionOutOfRange:
		return "ProjectionOutOfRange"
	default:
		return "UnknownErrorKind"
	}
}

// CoreError wraps an ErrorKind with the operation that raised it and
// an optional underlying cause.
type CoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *CoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *CoreError) Unwrap() error { return e.Err }

// Is reports whether err is a CoreError of the given kind.
func Is(err error, kind ErrorKind) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Kind == kind
}

func newErr(kind ErrorKind, op string, cause error) *CoreError {
	return &CoreError{Kind: kind, Op: op, Err: cause}
}

// New builds a CoreError, for use by sibling packages (nids, projection,
// volume, polaralg) that raise the same error taxonomy.
func New(kind ErrorKind, op string, cause error) *CoreError {
	return newErr(kind, op, cause)
}
