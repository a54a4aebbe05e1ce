// Command kdbench is the test-harness CLI for the kdtree module: it
// generates random points, builds a tree, optionally
// validates it, fires a fixed 10,000,000 find-closest-point queries
// through a blocked parallel-for, optionally brute-force-verifies every
// result, and logs timings.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kdtree/kdpar"
	"github.com/katalvlaran/kdtree/point"
	"github.com/katalvlaran/kdtree/query"
	"github.com/katalvlaran/kdtree/tree"
)

const (
	defaultNumPoints = 173
	numQueries       = 10_000_000
	dims             = 4
	blockSize        = 1024
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	nPoints := defaultNumPoints
	verify := pflag.BoolP("verify", "v", false, "validate the built tree and brute-force-verify every query result")
	nRepeats := pflag.IntP("nr", "n", 1, "number of times to repeat the 10,000,000-query pass")
	maxRadius := pflag.Float64P("radius", "r", math.Inf(1), "maximum FCP search radius (default: unbounded)")
	maxConcurrency := pflag.IntP("jobs", "j", 0, "maximum concurrent query blocks (0: unlimited)")
	pflag.Parse()

	if args := pflag.Args(); len(args) > 0 {
		n, err := parsePositiveInt(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("arg", args[0]).Msg("invalid point count")
		}
		nPoints = n
	}

	if *maxRadius < 0 {
		log.Fatal().Float64("radius", *maxRadius).Msg("radius must be non-negative")
	}

	points := generatePoints(nPoints, "generating points")

	buildStart := time.Now()
	log.Info().Int("n", nPoints).Msg("building tree")
	if err := tree.Build(points, dims); err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
	buildElapsed := time.Since(buildStart)
	log.Info().Dur("elapsed", buildElapsed).Msg("tree built")

	if *verify {
		log.Info().Msg("checking tree invariant")
		if err := tree.Check(points, dims); err != nil {
			log.Fatal().Err(err).Msg("tree failed correctness check")
		}
		log.Info().Msg("tree invariant check passed")
	}

	queries := generatePoints(numQueries, "generating queries")
	results := make([]int, numQueries)

	queryStart := time.Now()
	bar := progressbar.Default(int64(*nRepeats), "running fcp queries")
	for rep := 0; rep < *nRepeats; rep++ {
		err := kdpar.ForBlocked(context.Background(), numQueries, blockSize, *maxConcurrency, func(begin, end int) error {
			for i := begin; i < end; i++ {
				idx, err := query.FCP(queries[i], points, dims, *maxRadius)
				if err != nil {
					return err
				}
				results[i] = idx
			}
			return nil
		})
		if err != nil {
			log.Fatal().Err(err).Msg("query pass failed")
		}
		_ = bar.Add(1)
	}
	queryElapsed := time.Since(queryStart)

	rate := float64(numQueries*(*nRepeats)) / queryElapsed.Seconds()
	log.Info().
		Int("repeats", *nRepeats).
		Dur("elapsed", queryElapsed).
		Float64("queries_per_sec", rate).
		Msg("fcp queries complete")

	if *verify {
		log.Info().Msg("brute-force verifying results")
		verifyResults(queries, points, results)
		log.Info().Msg("verification succeeded")
	}
}

func generatePoints(n int, label string) []point.Point[float64] {
	bar := progressbar.Default(int64(n), label)
	pts := make([]point.Point[float64], n)
	for i := range pts {
		coords := make([]float64, dims)
		for d := range coords {
			coords[d] = rand.Float64()
		}
		pts[i] = point.Point[float64]{Coords: coords}
		_ = bar.Add(1)
	}
	return pts
}

func verifyResults(queries, points []point.Point[float64], results []int) {
	for i, idx := range results {
		if idx == -1 {
			continue
		}
		q := queries[i]
		reportedDist := point.Distance(q, points[idx], dims)
		for j := range points {
			d := point.Distance(q, points[j], dims)
			if d < reportedDist {
				log.Fatal().
					Int("query", i).
					Int("offending_point", j).
					Float64("dist", d).
					Float64("reported_dist", reportedDist).
					Msg("verification failed: closer point exists")
			}
		}
	}
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, tree.ErrNegativeSize
	}
	return n, nil
}
