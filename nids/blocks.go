package nids

import (
	"encoding/binary"
	"io"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

// blockDivider is the 2-byte marker (-1 as a signed short) that
// precedes every block except the message header.
const blockDivider = -1

func readDivider(r io.Reader) error {
	var marker int16
	if err := binary.Read(r, binary.BigEndian, &marker); err != nil {
		return err
	}
	if marker != blockDivider {
		return datatype.New(datatype.ErrInvalidBlockDivider, "readDivider", nil)
	}
	return nil
}

func writeDivider(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, int16(blockDivider))
}

// MessageHeader is the 18-byte, divider-free header that opens every
// NIDS message.
type MessageHeader struct {
	MessageCode    int16
	JulianDate     int16 // modified Julian date, epoch day = 1
	SecondsOfDay   int32
	MessageLength  int32 // total bytes including this header
	SourceID       int16
	DestinationID  int16
	BlockCount     int16
}

// ReadMessageHeader parses the 18-byte message header block.
func ReadMessageHeader(r io.Reader) (*MessageHeader, error) {
	h := &MessageHeader{}
	fields := []any{&h.MessageCode, &h.JulianDate, &h.SecondsOfDay, &h.MessageLength, &h.SourceID, &h.DestinationID, &h.BlockCount}
	for _, f := range fields {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Write emits the 18-byte message header block.
func (h *MessageHeader) Write(w io.Writer) error {
	fields := []any{h.MessageCode, h.JulianDate, h.SecondsOfDay, h.MessageLength, h.SourceID, h.DestinationID, h.BlockCount}
	for _, f := range fields {
		if err := binary.Write(w, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// Time returns the scan time encoded in the header.
func (h *MessageHeader) Time() rtime.Time {
	return TimeFromNIDS(int(h.JulianDate), int(h.SecondsOfDay))
}

// ProductDescription is the Product Description Block: product
// identity, scan/generation time, ten product-dependent shorts (dep[2]
// carries the elevation angle x10 for most products), the sixteen
// threshold shorts, and the three trailing block-offset hints.
type ProductDescription struct {
	Location     geom.LLH
	ProductCode  int16
	OpMode       int16
	VCP          int16
	SeqNumber    int16
	VolScanNum   int16
	VolScanTime  rtime.Time
	GenTime      rtime.Time
	Dep          [10]int16
	Thresholds   [16]int16
	NumMaps      int16
	SymbologyOff int32
	GraphicOff   int32
	TabularOff   int32
}

// Dep1 returns the i'th product-dependent short, 1-based to match the
// source's numbering convention.
func (p *ProductDescription) Dep1(i int) int16 { return p.Dep[i-1] }

// SetDep1 sets the i'th product-dependent short, 1-based.
func (p *ProductDescription) SetDep1(i int, v int16) { p.Dep[i-1] = v }

// ElevationDegs returns the elevation angle encoded in dep[2] (0-based),
// which is in tenths of a degree for every product code except 84.
func (p *ProductDescription) ElevationDegs() float64 {
	if p.ProductCode == 84 {
		return float64(p.Dep[2])
	}
	return float64(p.Dep[2]) / 10.0
}

// SetElevationDegs is the inverse of ElevationDegs.
func (p *ProductDescription) SetElevationDegs(degs float64) {
	if p.ProductCode == 84 {
		p.Dep[2] = int16(degs)
		return
	}
	p.Dep[2] = int16(degs * 10)
}

// ReadProductDescription parses the 98-byte Product Description Block
// (preceded by its own divider, already consumed by the caller).
func ReadProductDescription(r io.Reader) (*ProductDescription, error) {
	p := &ProductDescription{}
	var latRaw, lonRaw int32
	var heightRaw int16
	if err := binary.Read(r, binary.BigEndian, &latRaw); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &lonRaw); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &heightRaw); err != nil {
		return nil, err
	}
	p.Location = geom.LLH{
		LatDegs:   float64(latRaw) / 1000.0,
		LonDegs:   float64(lonRaw) / 1000.0,
		HeightKMs: float64(heightRaw) * 0.0003048, // feet -> km
	}

	if err := binary.Read(r, binary.BigEndian, &p.ProductCode); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.OpMode); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.VCP); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.SeqNumber); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.VolScanNum); err != nil {
		return nil, err
	}

	var volScanDate int16
	var volScanSecs int32
	if err := binary.Read(r, binary.BigEndian, &volScanDate); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &volScanSecs); err != nil {
		return nil, err
	}
	p.VolScanTime = TimeFromNIDS(int(volScanDate), int(volScanSecs))

	var genDate int16
	var genSecs int32
	if err := binary.Read(r, binary.BigEndian, &genDate); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &genSecs); err != nil {
		return nil, err
	}
	if genDate <= 1 {
		p.GenTime = p.VolScanTime
	} else {
		p.GenTime = TimeFromNIDS(int(genDate), int(genSecs))
	}

	if err := binary.Read(r, binary.BigEndian, &p.Dep); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.Thresholds); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.NumMaps); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.SymbologyOff); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.GraphicOff); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &p.TabularOff); err != nil {
		return nil, err
	}
	return p, nil
}

// Write emits the Product Description Block (not including its divider).
func (p *ProductDescription) Write(w io.Writer) error {
	latRaw := int32(p.Location.LatDegs * 1000.0)
	lonRaw := int32(p.Location.LonDegs * 1000.0)
	heightRaw := int16(p.Location.HeightKMs / 0.0003048)
	if err := binary.Write(w, binary.BigEndian, latRaw); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, lonRaw); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, heightRaw); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.ProductCode); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.OpMode); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.VCP); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.SeqNumber); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.VolScanNum); err != nil {
		return err
	}
	volJulian, volSecs := NIDSFromTime(p.VolScanTime)
	if err := binary.Write(w, binary.BigEndian, int16(volJulian)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int32(volSecs)); err != nil {
		return err
	}
	genJulian, genSecs := NIDSFromTime(p.GenTime)
	if err := binary.Write(w, binary.BigEndian, int16(genJulian)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int32(genSecs)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.Dep); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.Thresholds); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.NumMaps); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.SymbologyOff); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, p.GraphicOff); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, p.TabularOff)
}

// SymbologyBlock is the 10-byte prolog preceding the radial payload.
type SymbologyBlock struct {
	BlockID     int16
	BlockLength int32
	LayerCount  int16
}

// ReadSymbologyBlock parses the 10-byte prolog (divider already consumed).
func ReadSymbologyBlock(r io.Reader) (*SymbologyBlock, error) {
	s := &SymbologyBlock{}
	if err := binary.Read(r, binary.BigEndian, &s.BlockID); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &s.BlockLength); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.BigEndian, &s.LayerCount); err != nil {
		return nil, err
	}
	return s, nil
}

// Write emits the 10-byte prolog.
func (s *SymbologyBlock) Write(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, s.BlockID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, s.BlockLength); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, s.LayerCount)
}
