package nids

import (
	"encoding/binary"
	"io"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// Radial packet codes recognized in a Product Symbology layer. These
// are wire values read as uint16: 0xAF1F (44831) overflows int16, so
// the packet code is carried as uint16 throughout rather than the
// signed type the rest of this package otherwise favors.
const (
	packetLegacyRLE   uint16 = 1
	packetDigitalByte uint16 = 16
	packetGenericXDR  uint16 = 28
	packetDigitalAF1F uint16 = 0xAF1F
)

// RadialRun is one decoded radial: its start angle, angular width, and
// one raw wire byte per gate.
type RadialRun struct {
	StartAngleDegs float64
	DeltaAngleDegs float64
	Values         []byte
}

// RadialDataBlock is a decoded Digital Radial Data Array packet (code
// 16 or its AF1F alias): uniform gate count across radials, a fixed
// range-scale factor, and one RadialRun per azimuth.
type RadialDataBlock struct {
	PacketCode       uint16
	FirstBinKMs      float64
	NumGates         int
	RangeScaleFactor float64
	Radials          []RadialRun
}

// readRadialDataBlock parses a radial packet immediately following a
// Product Symbology layer divider. Packet code 1 (legacy run-length)
// and 28 (generic/XDR) are recognized but not decoded.
func readRadialDataBlock(r io.Reader) (*RadialDataBlock, error) {
	var packetCode uint16
	if err := binary.Read(r, binary.BigEndian, &packetCode); err != nil {
		return nil, err
	}

	switch packetCode {
	case packetLegacyRLE:
		return nil, datatype.New(datatype.ErrNullProductUnsupported, "readRadialDataBlock", nil)
	case packetGenericXDR:
		return nil, datatype.New(datatype.ErrXDRPacketUnsupported, "readRadialDataBlock", nil)
	case packetDigitalByte, packetDigitalAF1F:
		return readDigitalRadialArray(r, packetCode)
	default:
		return nil, datatype.New(datatype.ErrUnsupportedPacketCode, "readRadialDataBlock", nil)
	}
}

func readDigitalRadialArray(r io.Reader, packetCode uint16) (*RadialDataBlock, error) {
	var firstBin, numGates, iCenter, jCenter, rangeScale, numRadials int16
	for _, f := range []*int16{&firstBin, &numGates, &iCenter, &jCenter, &rangeScale, &numRadials} {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return nil, err
		}
	}
	_ = iCenter
	_ = jCenter

	blk := &RadialDataBlock{
		PacketCode:       packetCode,
		FirstBinKMs:      float64(firstBin) * 0.001,
		NumGates:         int(numGates),
		RangeScaleFactor: float64(rangeScale) * 0.001,
		Radials:          make([]RadialRun, numRadials),
	}

	for i := 0; i < int(numRadials); i++ {
		var numBytes, startAngleRaw, deltaAngleRaw int16
		if err := binary.Read(r, binary.BigEndian, &numBytes); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &startAngleRaw); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &deltaAngleRaw); err != nil {
			return nil, err
		}
		values := make([]byte, numBytes)
		if _, err := io.ReadFull(r, values); err != nil {
			return nil, err
		}
		if numBytes%2 != 0 {
			// wire format pads odd-length radials to a halfword boundary
			var pad [1]byte
			if _, err := io.ReadFull(r, pad[:]); err != nil {
				return nil, err
			}
		}
		blk.Radials[i] = RadialRun{
			StartAngleDegs: float64(startAngleRaw) / 10.0,
			DeltaAngleDegs: float64(deltaAngleRaw) / 10.0,
			Values:         values,
		}
	}
	return blk, nil
}

// Write emits a Digital Radial Data Array packet (always code 16 on
// the encode side; AF1F is a decode-only alias).
func (b *RadialDataBlock) Write(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, packetDigitalByte); err != nil {
		return err
	}
	header := []int16{
		int16(b.FirstBinKMs / 0.001),
		int16(b.NumGates),
		0, 0, // center-of-sweep i/j, unused by this reader
		int16(b.RangeScaleFactor / 0.001),
		int16(len(b.Radials)),
	}
	for _, f := range header {
		if err := binary.Write(w, binary.BigEndian, f); err != nil {
			return err
		}
	}
	for _, rad := range b.Radials {
		n := len(rad.Values)
		if err := binary.Write(w, binary.BigEndian, int16(n)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, int16(rad.StartAngleDegs*10)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, int16(rad.DeltaAngleDegs*10)); err != nil {
			return err
		}
		if _, err := w.Write(rad.Values); err != nil {
			return err
		}
		if n%2 != 0 {
			if _, err := w.Write([]byte{0}); err != nil {
				return err
			}
		}
	}
	return nil
}
