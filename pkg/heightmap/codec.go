package heightmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/klauspost/compress/zstd"
)

// Snapshot format: 4-byte magic, uint32 grid size (little-endian), then a
// zstd stream of size*size little-endian uint16 samples.
var snapshotMagic = [4]byte{'L', 'S', 'G', '1'}

// Snapshot errors.
var (
	ErrSnapshotMagic   = errors.New("invalid snapshot magic")
	ErrSnapshotCorrupt = errors.New("snapshot data corrupt")
)

// maxSnapshotSize caps the grid side length accepted on read, so a corrupt
// header cannot trigger a huge allocation.
const maxSnapshotSize = 1 << 15

// WriteSnapshot serializes the grid to w in the compressed snapshot format.
func WriteSnapshot(w io.Writer, g *Grid) error {
	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(g.Size)); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	payload := make([]byte, len(g.Samples)*2)
	for i, s := range g.Samples {
		binary.LittleEndian.PutUint16(payload[i*2:], s)
	}
	if _, err := enc.Write(payload); err != nil {
		enc.Close()
		return fmt.Errorf("writing snapshot payload: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot reads a grid previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Grid, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrSnapshotCorrupt, err)
	}
	if [4]byte(header[0:4]) != snapshotMagic {
		return nil, ErrSnapshotMagic
	}

	size := int(binary.LittleEndian.Uint32(header[4:8]))
	if size <= 0 || size > maxSnapshotSize || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("%w: bad grid size %d", ErrSnapshotCorrupt, size)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	defer dec.Close()

	payload := make([]byte, size*size*2)
	if _, err := io.ReadFull(dec, payload); err != nil {
		return nil, fmt.Errorf("%w: short payload: %v", ErrSnapshotCorrupt, err)
	}

	samples := make([]uint16, size*size)
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint16(payload[i*2:])
	}

	return &Grid{Size: size, Samples: samples}, nil
}
