package strbuilder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strbuilder"
)

// ExampleBuilder demonstrates the basic accumulate-then-finalize flow.
func ExampleBuilder() {
	// 1) Create a Builder with the default reservation:
	b := strbuilder.New()

	// 2) Append values of different kinds, in order:
	b.AppendString("i am building")
	b.AppendRune(' ')
	b.AppendString("a string")

	// 3) Finalize: validates UTF-8 and consumes the Builder.
	s, err := b.String()
	if err != nil {
		fmt.Println("finalize failed:", err)
		return
	}
	fmt.Println(s)

	// Output:
	// i am building a string
}

// ExampleBuilder_appendRune shows multibyte scalars round-tripping next to
// plain text.
func ExampleBuilder_appendRune() {
	b := strbuilder.New()

	b.AppendRune('Æ') // U+00C6, a 2-byte encoding
	b.AppendString("nima")

	s, _ := b.String()
	fmt.Println(s, "-", len(s), "bytes")

	// Output:
	// Ænima - 6 bytes
}

// ExampleWithLimit shows the bounded mode: crossing appends fail
// atomically with ErrWriteLimit.
func ExampleWithLimit() {
	b := strbuilder.New(strbuilder.WithLimit(5))

	b.AppendString("hello")
	err := b.AppendByte('!')

	fmt.Println("limit hit:", errors.Is(err, strbuilder.ErrWriteLimit))
	fmt.Println("accumulated:", b.Len(), "bytes")

	// Output:
	// limit hit: true
	// accumulated: 5 bytes
}

// ExampleEncodingError shows locating the first ill-formed byte after a
// failed finalize.
func ExampleEncodingError() {
	b := strbuilder.New()

	b.AppendString("ok")
	b.AppendByte(0x80) // lone continuation byte

	_, err := b.String()

	var encErr *strbuilder.EncodingError
	if errors.As(err, &encErr) {
		fmt.Println("first invalid byte at offset", encErr.Offset)
	}

	// Output:
	// first invalid byte at offset 2
}
