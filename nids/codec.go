package nids

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	dsnetbzip2 "github.com/dsnet/compress/bzip2"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// Decode reads one NIDS Level III product message from r and produces
// a *datatype.RadialSet. A leading WMO text heading, if present, is
// skipped automatically.
func Decode(r io.Reader) (*datatype.RadialSet, error) {
	br := bufio.NewReader(r)
	if err := skipTextHeader(br); err != nil {
		return nil, err
	}

	header, err := ReadMessageHeader(br)
	if err != nil {
		return nil, err
	}

	// The header declares the total message length, itself included;
	// the rest of the stream is exactly this one message, so what
	// follows the header must account for the remainder exactly.
	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	const headerSize = 18
	if int32(len(rest))+headerSize != header.MessageLength {
		return nil, datatype.New(datatype.ErrCorruptNIDSLength, "Decode", nil)
	}
	tail := bytes.NewReader(rest)

	code := int(header.MessageCode)
	if IsNullProduct(code) {
		return nil, datatype.New(datatype.ErrNullProductUnsupported, "Decode", nil)
	}
	info, ok := Lookup(code)
	if !ok {
		return nil, datatype.New(datatype.ErrProductCodeUnknown, "Decode", nil)
	}

	if err := readDivider(tail); err != nil {
		return nil, err
	}
	pdb, err := ReadProductDescription(tail)
	if err != nil {
		return nil, err
	}

	body := io.Reader(tail)
	if info.Compression {
		compressedRest, err := io.ReadAll(tail)
		if err != nil {
			return nil, err
		}
		decompressed, err := decompressBZIP2(compressedRest)
		if err != nil {
			return nil, datatype.New(datatype.ErrBZIP2DecodeFailure, "Decode", err)
		}
		body = bytes.NewReader(decompressed)
	}

	if err := readDivider(body); err != nil {
		return nil, err
	}
	if _, err := ReadSymbologyBlock(body); err != nil {
		return nil, err
	}
	if err := readDivider(body); err != nil {
		return nil, err
	}
	radialBlock, err := readRadialDataBlock(body)
	if err != nil {
		return nil, err
	}

	return buildRadialSet(header, pdb, info, radialBlock), nil
}

// skipTextHeader consumes up to ten leading printable-ASCII lines
// (WMO abbreviated heading + SOH banner), stopping at the first byte
// that cannot start a NIDS message header's printable text.
func skipTextHeader(br *bufio.Reader) error {
	for i := 0; i < 10; i++ {
		b, err := br.Peek(1)
		if err != nil {
			return err
		}
		if b[0] < 0x20 || b[0] > 0x7e {
			return nil
		}
		if _, err := br.ReadString('\n'); err != nil {
			return err
		}
	}
	return nil
}

func decompressBZIP2(data []byte) ([]byte, error) {
	zr := bzip2.NewReader(bytes.NewReader(data))
	return io.ReadAll(zr)
}

func buildRadialSet(header *MessageHeader, pdb *ProductDescription, info ProductInfo, block *RadialDataBlock) *datatype.RadialSet {
	numRadials := len(block.Radials)
	numGates := block.NumGates
	distToFirstGateM := block.FirstBinKMs * 1000.0

	rs := datatype.NewRadialSet(info.TypeName, header.Time(), pdb.Location, pdb.ElevationDegs(), distToFirstGateM, numRadials, numGates)
	rs.Units = info.Units
	rs.VCP = int(pdb.VCP)

	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	gateWidthNode, _ := rs.GetNode("GateWidth")
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	azimuth := azimuthNode.Array()
	beamWidth := beamWidthNode.Array()
	gateWidth := gateWidthNode.Array()
	primary := primaryNode.Array()

	gateWidthM := block.RangeScaleFactor * 1000.0
	for radial, run := range block.Radials {
		azimuth.SetF64(radial, run.StartAngleDegs)
		beamWidth.SetF64(radial, run.DeltaAngleDegs)
		gateWidth.SetF64(radial, gateWidthM)
		for gate := 0; gate < numGates; gate++ {
			var raw int16
			if gate < len(run.Values) {
				raw = int16(run.Values[gate])
			}
			value, special := DecodeThreshold(info.Decode, raw, info)
			idx := radial*numGates + gate
			if special {
				primary.SetF64(idx, datatype.MissingData)
			} else {
				primary.SetF64(idx, value)
			}
		}
	}
	return rs
}

// Encode writes rs back out as a single-message, uncompressed NIDS
// Level III product using packet code 16 (Digital Radial Data Array).
func Encode(w io.Writer, rs *datatype.RadialSet, productCode int) error {
	info, ok := Lookup(productCode)
	if !ok {
		return datatype.New(datatype.ErrProductCodeUnknown, "Encode", nil)
	}

	var buf bytes.Buffer
	pdb := &ProductDescription{
		Location:    rs.Location,
		ProductCode: int16(productCode),
		VCP:         int16(rs.VCP),
		VolScanTime: rs.DataTime,
		GenTime:     rs.DataTime,
	}
	pdb.SetElevationDegs(rs.ElevationDegs)

	if err := pdb.Write(&buf); err != nil {
		return err
	}

	var radialBuf bytes.Buffer
	if err := writeDivider(&radialBuf); err != nil {
		return err
	}
	radialBlock := buildRadialDataBlock(rs, info)
	if err := radialBlock.Write(&radialBuf); err != nil {
		return err
	}

	sym := &SymbologyBlock{BlockID: 1, LayerCount: 1, BlockLength: int32(10 + radialBuf.Len())}
	var symBuf bytes.Buffer
	if err := writeDivider(&symBuf); err != nil {
		return err
	}
	if err := sym.Write(&symBuf); err != nil {
		return err
	}
	if _, err := symBuf.Write(radialBuf.Bytes()); err != nil {
		return err
	}

	payload := symBuf.Bytes()
	if info.Compression {
		compressed, err := compressBZIP2(payload)
		if err != nil {
			return err
		}
		payload = compressed
	}

	header := &MessageHeader{
		MessageCode:   int16(productCode),
		SourceID:      0,
		DestinationID: 0,
		BlockCount:    3,
	}
	header.JulianDate, header.SecondsOfDay = nidsFields(rs)
	header.MessageLength = int32(18 + 2 + buf.Len() + len(payload))

	if err := header.Write(w); err != nil {
		return err
	}
	if err := writeDivider(w); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

func nidsFields(rs *datatype.RadialSet) (int16, int32) {
	julian, secs := NIDSFromTime(rs.DataTime)
	return int16(julian), int32(secs)
}

func buildRadialDataBlock(rs *datatype.RadialSet, info ProductInfo) *RadialDataBlock {
	numRadials := rs.NumRadials()
	numGates := rs.NumGates()
	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	azimuth := azimuthNode.Array()
	beamWidth := beamWidthNode.Array()
	primary := primaryNode.Array()

	block := &RadialDataBlock{
		FirstBinKMs:      rs.DistToFirstGateM / 1000.0,
		NumGates:         numGates,
		RangeScaleFactor: info.ResolutionKM,
		Radials:          make([]RadialRun, numRadials),
	}
	for radial := 0; radial < numRadials; radial++ {
		values := make([]byte, numGates)
		for gate := 0; gate < numGates; gate++ {
			idx := radial*numGates + gate
			v := primary.GetF64(idx)
			special := !datatype.IsGood(v)
			raw := EncodeThreshold(info.Decode, v, special, info)
			values[gate] = byte(raw)
		}
		block.Radials[radial] = RadialRun{
			StartAngleDegs: azimuth.GetF64(radial),
			DeltaAngleDegs: beamWidth.GetF64(radial),
			Values:         values,
		}
	}
	return block
}

func compressBZIP2(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := dsnetbzip2.NewWriter(&buf, nil)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
