package exercise

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/calebcase/floatbits/float"
	"github.com/calebcase/floatbits/literal"
)

var small = float.Format{ExponentWidth: 4, MantissaWidth: 3}

func TestText(t *testing.T) {
	require.Equal(t,
		"Geben Sie zu den folgenden rationalen Zahlen die jeweilige 1.4.3 Gleitkommazahl an.",
		Text(language.German, small),
	)
	require.Equal(t,
		"Give the 1.8.23 floating point number for each of the following rational numbers.",
		Text(language.English, float.Format{ExponentWidth: 8, MantissaWidth: 23}),
	)
	require.Equal(t,
		"Give the 1.4.3 floating point number for each of the following rational numbers.",
		Text(language.Japanese, small),
	)
}

func TestParse(t *testing.T) {
	reqs, err := Parse(strings.NewReader(" 1,5; -0,5 ;inf;;\nignored;line\n"), small)
	require.NoError(t, err)

	var texts []string
	for _, r := range reqs {
		require.Equal(t, small, r.Format)
		texts = append(texts, r.Literal)
	}
	require.Equal(t, []string{"1,5", "-0,5", "inf"}, texts)

	reqs, err = Parse(strings.NewReader("42"), small)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	_, err = Parse(strings.NewReader("\n1,5"), small)
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = Parse(strings.NewReader(""), small)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, f := range []float.Format{
		{ExponentWidth: 1, MantissaWidth: 3},
		small,
		{ExponentWidth: 6, MantissaWidth: 10},
		{ExponentWidth: 11, MantissaWidth: 52},
	} {
		reqs, err := Generate(rng, f, 50)
		require.NoError(t, err)
		require.Len(t, reqs, 50)

		results, err := float.EncodeAll(context.Background(), reqs)
		require.NoError(t, err)

		limit := int64(1) << (f.ExponentWidth - 1)
		for _, r := range results {
			l, err := literal.Parse(r.Literal)
			require.NoError(t, err, r.Literal)
			require.Less(t, l.Integer.Value.Int64(), limit, r.Literal)
			require.NotEqual(t, float.Overflow, r.Class, r.Literal)
			require.Equal(t, f.Width(), r.Bits.Len(), r.Literal)
		}
	}

	_, err := Generate(rng, float.Format{}, 1)
	require.Error(t, err)
	require.True(t, float.ConfigError.Has(err))
}

func TestNew(t *testing.T) {
	reqs, err := Parse(strings.NewReader("1,5;0,5;-1,5;inf;-inf;0"), small)
	require.NoError(t, err)

	ex, err := New(context.Background(), language.German, small, reqs)
	require.NoError(t, err)
	require.Equal(t, Text(language.German, small), ex.Text)

	var got []string
	for _, r := range ex.Results {
		got = append(got, r.String())
	}
	require.Equal(t, []string{
		"0 0111 100",
		"0 0110 000",
		"1 0111 100",
		"0 1111 000",
		"1 1111 000",
		"0 0000 000",
	}, got)

	_, err = New(context.Background(), language.German, small, []float.Request{{Literal: "1,2,3", Format: small}})
	require.Error(t, err)
	require.True(t, literal.FormatError.Has(err))
}
