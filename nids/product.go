// Package nids implements the NEXRAD Level III ("NIDS") block codec:
// product-code lookup table, message/product-description/symbology
// block readers and writers, the seven threshold-decoding methods,
// and BZIP2 framing, producing and consuming *datatype.RadialSet
// values.
package nids

// DecodeMethod names which of the seven threshold-decode strategies
// (or one of the three special encoded-threshold strategies) a
// product uses.
type DecodeMethod int

const (
	Decode1 DecodeMethod = iota + 1
	Decode2
	Decode3
	Decode4
	Decode5
	Decode6
	Decode7
	DecodeE1 // product 134: codes 0/1 special, else (code-2) hundreds of feet
	DecodeE2 // product 135: low-byte value over a high-byte scale, code 0 special
	DecodeE3 // product 176: raw short times 0.1, no specials
)

// ProductInfo is one row of the process-wide product-code table:
// RAPIO's rConfigNIDSInfo, hardcoded here since configuration-file
// loading is out of scope.
type ProductInfo struct {
	Code            int
	TypeName        string
	Units           string
	MsgFormat       string // "Radial" or "Grid"
	Compression     bool
	Decode          DecodeMethod
	MinDivisor      float64
	IncreaseDivisor float64
	// ResolutionKM is the along-radial gate width this product's
	// symbology reports. Encode writes it as the radial block's range
	// scale factor; Decode takes the gate width from the wire and does
	// not compare it against this value.
	ResolutionKM float64
	// DivideBy100 marks the hundredths-of-inch -> inch unit
	// conversion used by the precipitation accumulation products.
	DivideBy100 bool
}

// ProductTable is the process-wide, read-only product-code lookup
// table. Per the design notes this core carries no mutable registry:
// nothing in scope ever mutates this map after init.
var ProductTable = map[int]ProductInfo{
	16: {Code: 16, TypeName: "Reflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25},
	19: {Code: 19, TypeName: "Reflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 1.0},
	20: {Code: 20, TypeName: "Reflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 2.0},
	27: {Code: 27, TypeName: "Velocity", Units: "kt", MsgFormat: "Radial", Decode: Decode4, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25},
	56: {Code: 56, TypeName: "Velocity", Units: "kt", MsgFormat: "Radial", Decode: Decode4, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25},
	30: {Code: 30, TypeName: "SpectrumWidth", Units: "kt", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25},
	32: {Code: 32, TypeName: "DigitalReflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	94: {Code: 94, TypeName: "DigitalReflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	99: {Code: 99, TypeName: "DigitalVelocity", Units: "kt", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	134: {Code: 134, TypeName: "EnhancedEchoTops", Units: "ft", MsgFormat: "Radial", Decode: DecodeE1, Compression: true},
	135: {Code: 135, TypeName: "DigitalVIL", Units: "kg/m^2", MsgFormat: "Radial", Decode: DecodeE2, Compression: true},
	153: {Code: 153, TypeName: "SuperResDigitalReflectivity", Units: "dBZ", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	154: {Code: 154, TypeName: "SuperResDigitalVelocity", Units: "kt", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	155: {Code: 155, TypeName: "SuperResDigitalSpectrumWidth", Units: "kt", MsgFormat: "Radial", Decode: Decode3, MinDivisor: 10, IncreaseDivisor: 10, ResolutionKM: 0.25, Compression: true},
	159: {Code: 159, TypeName: "DigitalDifferentialReflectivity", Units: "dB", MsgFormat: "Radial", Decode: Decode2, Compression: true, ResolutionKM: 0.25},
	161: {Code: 161, TypeName: "DigitalCorrelationCoefficient", Units: "dimensionless", MsgFormat: "Radial", Decode: Decode2, Compression: true, ResolutionKM: 0.25},
	163: {Code: 163, TypeName: "DigitalSpecificDifferentialPhase", Units: "deg/km", MsgFormat: "Radial", Decode: Decode2, Compression: true, ResolutionKM: 0.25},
	165: {Code: 165, TypeName: "DigitalHydrometeorClassification", Units: "dimensionless", MsgFormat: "Radial", Decode: DecodeE2, Compression: true, ResolutionKM: 0.25},
	170: {Code: 170, TypeName: "DigitalAccumulation1Hr", Units: "in", MsgFormat: "Radial", Decode: Decode2, Compression: true, DivideBy100: true, ResolutionKM: 1.0},
	171: {Code: 171, TypeName: "Accumulation3Hr", Units: "in", MsgFormat: "Radial", Decode: Decode2, DivideBy100: true, ResolutionKM: 1.0},
	172: {Code: 172, TypeName: "StormTotalAccumulation", Units: "in", MsgFormat: "Radial", Decode: Decode2, Compression: true, DivideBy100: true, ResolutionKM: 1.0},
	173: {Code: 173, TypeName: "DigitalStormTotalAccumulation", Units: "in", MsgFormat: "Radial", Decode: Decode2, Compression: true, DivideBy100: true, ResolutionKM: 1.0},
	174: {Code: 174, TypeName: "DigitalUserSelectableAccumulation", Units: "in", MsgFormat: "Radial", Decode: Decode2, Compression: true, DivideBy100: true, ResolutionKM: 1.0},
	175: {Code: 175, TypeName: "DigitalOneHourDifferenceAccumulation", Units: "in", MsgFormat: "Radial", Decode: Decode2, Compression: true, DivideBy100: true, ResolutionKM: 1.0},
	176: {Code: 176, TypeName: "DigitalInstantaneousPrecipitationRate", Units: "in/hr", MsgFormat: "Radial", Decode: DecodeE3, Compression: true, ResolutionKM: 0.25},
	177: {Code: 177, TypeName: "HybridHydrometeorClassification", Units: "dimensionless", MsgFormat: "Radial", Decode: DecodeE2, Compression: true, ResolutionKM: 0.25},
}

// nullProductCodes are recognized and skipped without producing a DataType.
var nullProductCodes = map[int]bool{
	31: true, 169: true, 170: true, 171: true, 172: true, 173: true, 175: true,
}

// IsNullProduct reports whether code is in the null-product set.
func IsNullProduct(code int) bool { return nullProductCodes[code] }

// Lookup returns the product-code table entry for code.
func Lookup(code int) (ProductInfo, bool) {
	info, ok := ProductTable[code]
	return info, ok
}

// GateWidthMeters derives the along-radial gate width for a product
// from its table resolution, expressed directly in kilometers in
// ProductTable to avoid threading nautical-mile/kilometer unit tags
// through every row (code 34, the only product the source splits
// out by a kilometer-native resolution, behaves identically once
// ResolutionKM is already in kilometers).
func GateWidthMeters(resolutionKM float64) float64 {
	return resolutionKM * 1000.0
}
