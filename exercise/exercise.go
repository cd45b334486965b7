// Package exercise builds floating point conversion exercises: a task text
// in the reader's language and the encoded solution for every number.
package exercise

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/calebcase/floatbits/float"
)

// Error is the error class for this package.
var Error = errs.Class("exercise")

// TaskSeparator separates the numbers of one exercise on its input line.
const TaskSeparator = ";"

// FractionDigitLimit bounds the fractional part of generated numbers.
const FractionDigitLimit = 100000

const taskText = "Give the %s floating point number for each of the following rational numbers."

func init() {
	// Catalog entries can only fail for malformed messages.
	_ = message.SetString(language.English, taskText, taskText)
	_ = message.SetString(language.German, taskText, "Geben Sie zu den folgenden rationalen Zahlen die jeweilige %s Gleitkommazahl an.")
}

// Exercise is a task text and its solution.
type Exercise struct {
	Text    string
	Results []float.Result
}

// Text returns the task text for the format in the given language. Languages
// without a translation get English.
func Text(tag language.Tag, f float.Format) string {
	return message.NewPrinter(tag).Sprintf(taskText, f.String())
}

// Parse reads the numbers of an exercise from the first line of r.
func Parse(r io.Reader, f float.Format) (reqs []float.Request, err error) {
	defer Error.WrapP(&err)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	for _, text := range strings.Split(line, TaskSeparator) {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		reqs = append(reqs, float.Request{
			Literal: text,
			Format:  f,
		})
	}

	if len(reqs) == 0 {
		return nil, Error.New("no numbers in input")
	}

	return reqs, nil
}

// Generate returns n random numbers that do not overflow the format. The
// integer part is within ±(2^(E-1) - 1) and the fractional part has up to
// five digits.
func Generate(rng *rand.Rand, f float.Format, n int) (reqs []float.Request, err error) {
	defer Error.WrapP(&err)

	err = f.Validate()
	if err != nil {
		return nil, err
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(f.ExponentWidth-1))
	span := new(big.Int).Lsh(limit, 1)
	span.Sub(span, big.NewInt(1))
	offset := new(big.Int).Sub(limit, big.NewInt(1))

	for i := 0; i < n; i++ {
		whole := new(big.Int).Rand(rng, span)
		whole.Sub(whole, offset)

		reqs = append(reqs, float.Request{
			Literal: fmt.Sprintf("%d,%d", whole, rng.Intn(FractionDigitLimit)),
			Format:  f,
		})
	}

	return reqs, nil
}

// New encodes the numbers of an exercise.
func New(ctx context.Context, tag language.Tag, f float.Format, reqs []float.Request) (_ *Exercise, err error) {
	defer Error.WrapP(&err)

	results, err := float.EncodeAll(ctx, reqs)
	if err != nil {
		return nil, err
	}

	return &Exercise{
		Text:    Text(tag, f),
		Results: results,
	}, nil
}
