package float

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeAll encodes the requests in parallel. The results are in request
// order. The first failure stops the remaining work and is returned.
func EncodeAll(ctx context.Context, reqs []Request) (_ []Result, err error) {
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, r := range reqs {
		i, r := i, r

		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			res, err := EncodeRequest(r)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}
