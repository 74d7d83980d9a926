package logical

import (
	"context"
	"runtime"

	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// LoadAll materializes every object of every file using up to workers
// goroutines. Each fingerprint is owned by one worker, picked by its shard,
// so a given object is always built by the same worker for the same worker
// count. workers <= 0 means GOMAXPROCS.
//
// Cancelling ctx stops further materialization; objects built so far stay
// valid and are reused by later lookups.
func LoadAll(ctx context.Context, files []*LogicalFile, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type job struct {
		lf *LogicalFile
		fp fingerprint.Fingerprint
	}
	shards := make([][]job, workers)
	total := 0
	for _, lf := range files {
		for _, fp := range lf.order {
			n := fp.Shard(workers)
			shards[n] = append(shards[n], job{lf: lf, fp: fp})
			total++
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for n, jobs := range shards {
		if len(jobs) == 0 {
			continue
		}
		g.Go(func() error {
			for _, j := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				j.lf.materialize(j.lf.entries[j.fp])
			}
			log.Debug().Msgf("logical.LoadAll shard=%d objects=%d", n, len(jobs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug().Msgf("logical.LoadAll files=%d objects=%d workers=%d", len(files), total, workers)
	return nil
}
