package float

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/floatbits/literal"
)

func TestEncodeAll(t *testing.T) {
	texts := []string{"1,5", "0,5", "-1,5", "inf", "-inf", "0", "0,0078125", "256"}
	want := []string{"0 0111 100", "0 0110 000", "1 0111 100", "0 1111 000", "1 1111 000", "0 0000 000", "0 0000 100", "0 1111 000"}

	// Repeat the list so there are more requests than workers.
	var reqs []Request
	var wantAll []string
	for i := 0; i < 16; i++ {
		for _, text := range texts {
			reqs = append(reqs, Request{Literal: text, Format: small})
		}
		wantAll = append(wantAll, want...)
	}

	results, err := EncodeAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.String()
		require.Equal(t, reqs[i].Literal, r.Literal)
	}

	if diff := cmp.Diff(wantAll, got); diff != "" {
		t.Fatalf("results out of order (-want +got):\n%s", diff)
	}
}

func TestEncodeAllError(t *testing.T) {
	reqs := []Request{
		{Literal: "1,5", Format: small},
		{Literal: "1,,5", Format: small},
		{Literal: "0,5", Format: small},
	}

	results, err := EncodeAll(context.Background(), reqs)
	require.Error(t, err)
	require.True(t, literal.FormatError.Has(err), fmt.Sprintf("%+v", err))
	require.Nil(t, results)
}

func TestEncodeAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EncodeAll(ctx, []Request{{Literal: "1", Format: small}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEncodeAllEmpty(t *testing.T) {
	results, err := EncodeAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
