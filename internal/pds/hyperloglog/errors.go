package hyperloglog

import "errors"

var (
	// ErrPrecisionOutOfRange is returned when p is not in [MinPrecision, MaxPrecision].
	ErrPrecisionOutOfRange = errors.New("hll: precision must be in [4, 18]")

	// ErrPrecisionMismatch is returned when merging sketches with different precisions.
	ErrPrecisionMismatch = errors.New("hll: cannot merge sketches with different precisions")

	// ErrHasherMismatch is returned when merging sketches that hash values differently.
	ErrHasherMismatch = errors.New("hll: cannot merge sketches with different hash functions")

	// ErrRegisterSizeMismatch is returned when two dense registers have a different slot count.
	ErrRegisterSizeMismatch = errors.New("hll: register sizes do not match")

	// ErrRegisterTypeMismatch is returned when a dense register is merged with
	// a register representation it does not understand.
	ErrRegisterTypeMismatch = errors.New("hll: register is not a dense register")

	// ErrSketchTypeMismatch is returned when decoding a weighted sketch as an
	// unweighted one, or the other way around.
	ErrSketchTypeMismatch = errors.New("hll: serialized sketch has a different type")

	// ErrInvalidWeight is returned for weights that are not strictly positive and finite.
	ErrInvalidWeight = errors.New("hll: weight must be strictly positive")

	// ErrUnknownHasher is returned when a hash function name or id is not known.
	ErrUnknownHasher = errors.New("hll: unknown hash function")

	// ErrInvalidData is returned when serialized data is truncated or corrupted.
	ErrInvalidData = errors.New("hll: invalid serialized data")

	// ErrInvalidOption is returned for option values outside their enumeration.
	ErrInvalidOption = errors.New("hll: invalid option")
)
