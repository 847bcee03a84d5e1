// Package randvalues draws and prints one random value per numeric type.
package randvalues

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/louisbranch/randvalues/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/randvalues/internal/tools/randvalues"

// ErrNilOutput indicates Run was called without a writer.
var ErrNilOutput = errors.New("output is required")

// Values holds one draw per numeric type.
type Values struct {
	U8  uint8
	I16 int16
	I32 int32
	U32 uint32
	F64 float64 // [0.0, 1.0)
}

// Draw takes the next five values from rng in u8, i16, i32, u32, f64 order.
//
// Integer draws truncate a uniform 32-bit value, so every bit pattern of the
// target type is equally likely.
func Draw(rng *rand.Rand) Values {
	return Values{
		U8:  uint8(rng.Uint32()),
		I16: int16(rng.Uint32()),
		I32: int32(rng.Uint32()),
		U32: rng.Uint32(),
		F64: rng.Float64(),
	}
}

// Lines renders the labeled output lines without trailing newlines.
func (v Values) Lines() []string {
	return []string{
		"Random u8: " + strconv.FormatUint(uint64(v.U8), 10),
		"Random i16: " + strconv.FormatInt(int64(v.I16), 10),
		"Random i32: " + strconv.FormatInt(int64(v.I32), 10),
		"Random u32: " + strconv.FormatUint(uint64(v.U32), 10),
		"Random f64: " + strconv.FormatFloat(v.F64, 'f', -1, 64),
	}
}

// Write prints one line per value to out.
func Write(out io.Writer, values Values) error {
	if out == nil {
		return ErrNilOutput
	}
	for _, line := range values.Lines() {
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return fmt.Errorf("write values: %w", err)
		}
	}
	return nil
}

// Run seeds a generator from entropy, draws one set of values and writes it
// to out. A nil entropy reader falls back to crypto/rand.
func Run(ctx context.Context, out io.Writer, entropy io.Reader) error {
	if out == nil {
		return ErrNilOutput
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "randvalues.draw",
		trace.WithAttributes(attribute.Bool("randvalues.default_entropy", entropy == nil)),
	)
	defer span.End()

	rng, err := random.New(entropy)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "seed generator")
		return fmt.Errorf("init random source: %w", err)
	}

	if err := Write(out, Draw(rng)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write values")
		return err
	}
	return nil
}
