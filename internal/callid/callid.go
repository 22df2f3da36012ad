package callid

import (
	"errors"
	"hash/fnv"

	"github.com/sqids/sqids-go"
)

var ErrMalformed = errors.New("malformed call id")

// Encoder turns (class, sequence) pairs into short URL-safe call ids.
type Encoder struct {
	sqids *sqids.Sqids
}

func New() (*Encoder, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &Encoder{sqids: s}, nil
}

func (e *Encoder) Encode(className string, seq uint64) (string, error) {
	return e.sqids.Encode([]uint64{ClassKey(className), seq})
}

// Decode returns the class key and sequence number encoded in id.
func (e *Encoder) Decode(id string) (classKey, seq uint64, err error) {
	numbers := e.sqids.Decode(id)
	if len(numbers) != 2 {
		return 0, 0, ErrMalformed
	}
	// Sqids decodes some foreign strings to numbers; only canonical ids count.
	canonical, err := e.sqids.Encode(numbers)
	if err != nil || canonical != id {
		return 0, 0, ErrMalformed
	}
	return numbers[0], numbers[1], nil
}

// ClassKey is a stable 32-bit key for a class name.
func ClassKey(className string) uint64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(className))
	return uint64(h.Sum32())
}
