package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ushitora-anqou/aqpaint/painter"
	"github.com/ushitora-anqou/aqpaint/util"
)

var (
	flagTrace = flag.Bool("trace", false, "log every handled event")
	flagSeed  = flag.Int64("seed", 0, "seed of the brush color sequence (0: derive from the clock)")
)

func newRand() *rand.Rand {
	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	util.Trace("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

func main() {
	flag.Parse()
	if *flagTrace {
		util.EnableTrace()
	}

	err := run()
	if err != nil {
		log.Print(err)
	}
	os.Exit(painter.ExitCode(err))
}
