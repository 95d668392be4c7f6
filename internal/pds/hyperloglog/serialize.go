package hyperloglog

import (
	"encoding/binary"
	"fmt"
)

// MarshalBinary encodes the sketch into the HYLL layout. The cached
// cardinality and its dirty flag are written as they are; no estimate is
// computed.
func (s *sketch) MarshalBinary() ([]byte, error) {
	//
	// DESIGN
	// ------
	//
	// 1. SPARSE
	//    The packed entries (key << 7 | rank) are sorted by key, so the
	//    differences between neighbours are small and non-negative. They are
	//    written as uvarints after a uvarint entry count.
	//
	//    +----------------+-----------+---------+---------+     +---------+
	//    | Header (16 B)  | Count (v) | Delta_0 | Delta_1 | ... | Delta_N |
	//    +----------------+-----------+---------+---------+     +---------+
	//
	// 2. DENSE
	//    One byte of bit width followed by the m registers packed at that
	//    width, least significant bit first. With bit packing off the width
	//    is always 8 and the payload is the raw register array.
	//
	//    +----------------+-----------+------------------------------+
	//    | Header (16 B)  | Width (1) | Registers (m * width bits)   |
	//    +----------------+-----------+------------------------------+
	//
	out := s.header.serialize()

	if s.header.encoding == Sparse {
		values := s.sparse.packed()
		out = binary.AppendUvarint(out, uint64(len(values)))
		prev := uint32(0)
		for _, v := range values {
			out = binary.AppendUvarint(out, uint64(v-prev))
			prev = v
		}
		return out, nil
	}

	width := uint8(8)
	if s.cfg.BitPacking {
		width = bitWidth(s.dense.maxRegisterValue)
	}
	out = append(out, width)
	if width == 8 {
		return append(out, s.dense.registers...), nil
	}
	return append(out, packBits(s.dense.registers, width)...), nil
}

// Unmarshal decodes an unweighted sketch. opts supply what the header does
// not carry: the logger, and the hasher when the sketch used a custom one.
func Unmarshal(data []byte, opts ...Option) (*HLL, error) {
	s, err := unmarshalSketch(data, false, opts)
	if err != nil {
		return nil, err
	}
	return &HLL{sketch: s}, nil
}

// UnmarshalWeighted decodes a weighted sketch. opts may also supply the
// random source for further updates.
func UnmarshalWeighted(data []byte, opts ...Option) (*WeightedHLL, error) {
	s, err := unmarshalSketch(data, true, opts)
	if err != nil {
		return nil, err
	}
	return &WeightedHLL{sketch: s}, nil
}

func unmarshalSketch(data []byte, weighted bool, opts []Option) (*sketch, error) {
	header, err := deserializeHeader(data)
	if err != nil {
		return nil, err
	}
	if header.has(flagWeighted) != weighted {
		return nil, fmt.Errorf("%w: weighted flag is %t", ErrSketchTypeMismatch, header.has(flagWeighted))
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	cfg.Precision = header.p
	cfg.Encoding = header.encoding
	cfg.BitPacking = header.has(flagBitPacking)
	cfg.BiasCorrection = header.has(flagBiasCorrection)
	cfg.Estimator = EstimatorHLLPlusPlus
	if header.has(flagErtl) {
		cfg.Estimator = EstimatorErtl
	}

	if header.hasherID == hasherIDCustom {
		if cfg.Hasher.id != hasherIDCustom {
			return nil, fmt.Errorf("%w: sketch uses a custom hasher, pass it with WithHasher", ErrUnknownHasher)
		}
	} else {
		h, ok := hasherByID(header.hasherID)
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownHasher, header.hasherID)
		}
		cfg.Hasher = h
	}

	s := newSketch(cfg, weighted)
	payload := data[headerSize:]

	if header.encoding == Sparse {
		values, err := decodeSparsePayload(payload)
		if err != nil {
			return nil, err
		}
		s.SetSparseRegister(values)
	} else {
		registers, err := decodeDensePayload(payload, 1<<header.p)
		if err != nil {
			return nil, err
		}
		if err := s.SetDenseRegister(registers); err != nil {
			return nil, err
		}
	}

	s.header.cachedCardinality = header.cachedCardinality
	s.header.cacheInvalid = header.cacheInvalid
	return s, nil
}

func decodeSparsePayload(payload []byte) ([]uint32, error) {
	count, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("%w: sparse entry count", ErrInvalidData)
	}
	payload = payload[n:]

	// Every entry takes at least one byte.
	if count > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: sparse entry count %d exceeds payload", ErrInvalidData, count)
	}

	values := make([]uint32, 0, count)
	var prev uint64
	for range count {
		delta, n := binary.Uvarint(payload)
		if n <= 0 {
			return nil, fmt.Errorf("%w: sparse data corrupted", ErrInvalidData)
		}
		payload = payload[n:]

		prev += delta
		if prev > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: sparse value overflows", ErrInvalidData)
		}
		values = append(values, uint32(prev))
	}
	return values, nil
}

func decodeDensePayload(payload []byte, m int) ([]byte, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: missing dense bit width", ErrInvalidData)
	}
	return unpackBits(payload[1:], payload[0], m)
}

// SparseRegisterValues returns the sparse entries packed as
// (key << 7) | rank in key order, or nil once the sketch is dense.
func (s *sketch) SparseRegisterValues() []uint32 {
	if s.header.encoding != Sparse {
		return nil
	}
	return s.sparse.packed()
}

// DenseRegisterBytes returns a copy of the m register bytes, or nil while the
// sketch is sparse.
func (s *sketch) DenseRegisterBytes() []byte {
	if s.header.encoding != Dense {
		return nil
	}
	out := make([]byte, len(s.dense.registers))
	copy(out, s.dense.registers)
	return out
}

// SetSparseRegister replays packed sparse values into the sketch. On a dense
// sketch the keys are masked down to p bits. A sparse sketch may be promoted
// while replaying.
func (s *sketch) SetSparseRegister(values []uint32) {
	mask := uint32(1)<<s.cfg.Precision - 1
	for _, v := range values {
		key, rank := unpackSparseValue(v)
		if s.header.encoding == Sparse {
			s.addSparse(key, rank)
			continue
		}
		if s.dense.set(key&mask, rank) {
			s.header.cacheInvalid = true
		}
	}
}

// SetDenseRegister replays m register bytes slot by slot. A sparse sketch is
// promoted first.
func (s *sketch) SetDenseRegister(registers []byte) error {
	m := 1 << s.cfg.Precision
	if len(registers) != m {
		return fmt.Errorf("%w: %d != %d", ErrRegisterSizeMismatch, len(registers), m)
	}

	s.promote()
	for i, v := range registers {
		if s.dense.set(uint32(i), v) {
			s.header.cacheInvalid = true
		}
	}
	return nil
}
