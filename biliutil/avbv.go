package biliutil

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	MinAid = uint64(1)
	MaxAid = uint64(1 << 51)

	Prefix = "BV1"
	Length = 12

	magicStr = "FcwAPNKTMug3GV5Lj7EJnHpWsx4tb8haYeviqBz6rkCy12mUSDQX9RdoZf"
	base     = uint64(len(magicStr))
	xorCode  = uint64(23442827791579)
	maskCode = uint64(2251799813685247)
	bitLen   = 52
)

var (
	ErrAvTooSmall  = fmt.Errorf("av is smaller than %d", MinAid)
	ErrAvTooBig    = fmt.Errorf("av is not smaller than %d", MaxAid)
	ErrAvNotNumber = errors.New("av is not a number")

	ErrBvEmpty         = errors.New("bv is empty")
	ErrBvTooSmall      = errors.New("bv is too small")
	ErrBvTooBig        = errors.New("bv is too big")
	ErrBvInvalidPrefix = errors.New("bv does not start with " + Prefix)
	ErrBvInvalidChar   = errors.New("bv has invalid char")
	ErrBvWithUnicode   = errors.New("bv with unicode char")
)

// InvalidCharError reports the first payload byte outside the alphabet.
type InvalidCharError struct {
	Char byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%s %q", ErrBvInvalidChar, e.Char)
}

func (e *InvalidCharError) Is(target error) bool {
	return target == ErrBvInvalidChar
}

var table [256]int8

func init() {
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(magicStr); i++ {
		table[magicStr[i]] = int8(i)
	}
}

// swap exchanges the two fixed byte pairs of the payload. Applying it twice
// restores the buffer.
func swap(r *[Length]byte) {
	r[3], r[9] = r[9], r[3]
	r[4], r[7] = r[7], r[4]
}

// Encode converts an av number into its 12 character BV token.
func Encode(aid uint64) (string, error) {
	if aid < MinAid {
		return "", fmt.Errorf("%w: %d", ErrAvTooSmall, aid)
	}
	if aid >= MaxAid {
		return "", fmt.Errorf("%w: %d", ErrAvTooBig, aid)
	}

	r := [Length]byte{'B', 'V', '1', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
	it := Length - 1

	// bit 51 is always set, so tmp has exactly 9 digits in base 58
	tmp := (MaxAid | aid) ^ xorCode
	for tmp != 0 && it >= len(Prefix) {
		r[it] = magicStr[tmp%base]
		tmp /= base
		it--
	}

	swap(&r)
	return string(r[:]), nil
}

// Decode converts a BV token back into its av number. The "BV1" prefix is
// matched case-insensitively, the payload is case-sensitive.
func Decode(bvid string) (uint64, error) {
	if len(bvid) == 0 {
		return 0, ErrBvEmpty
	}
	for i := 0; i < len(bvid); i++ {
		if bvid[i] >= 0x80 {
			return 0, ErrBvWithUnicode
		}
	}
	if len(bvid) < Length {
		return 0, ErrBvTooSmall
	}
	if len(bvid) > Length {
		return 0, ErrBvTooBig
	}
	if !strings.EqualFold(bvid[:len(Prefix)], Prefix) {
		return 0, ErrBvInvalidPrefix
	}

	var r [Length]byte
	copy(r[:], bvid)
	swap(&r)

	tmp := uint64(0)
	for i := len(Prefix); i < Length; i++ {
		d := table[r[i]]
		if d < 0 {
			return 0, &InvalidCharError{Char: r[i]}
		}
		tmp = tmp*base + uint64(d)
	}

	switch n := bits.Len64(tmp); {
	case n > bitLen:
		return 0, ErrBvTooBig
	case n < bitLen:
		return 0, ErrBvTooSmall
	}

	aid := (tmp & maskCode) ^ xorCode
	if aid < MinAid {
		return 0, ErrBvTooSmall
	}
	return aid, nil
}

// ParseAid parses a decimal av number, with or without its "av" prefix.
func ParseAid(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "av") {
		s = s[2:]
	}
	aid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAvNotNumber, err)
	}
	return aid, nil
}
