// Command byteprimbench runs a single primitive against supplied inputs and
// reports its result and the dispatcher's active capability set, letting
// callers reproduce a benchmark or bug report under a forced kernel tier
// (§4.8: "explicit override by name for benchmarking and reproducibility").
package main

import (
	"fmt"
	"log"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/coregx/byteprim"
)

var (
	op           string
	haystack     string
	needle       string
	forceScalar  bool
	showCaps     bool
	repeatCount  int
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("byteprimbench: ")

	flag.StringVarP(&op, "op", "o", "find", "primitive to run: find, rfind, order, equal, levenshtein")
	flag.StringVarP(&haystack, "haystack", "H", "", "haystack input")
	flag.StringVarP(&needle, "needle", "n", "", "needle/second input")
	flag.BoolVar(&forceScalar, "force-scalar", false, "restrict the dispatcher to scalar kernels")
	flag.BoolVar(&showCaps, "caps", false, "print the active capability set and exit")
	flag.IntVarP(&repeatCount, "repeat", "r", 1, "repeat the call this many times and report elapsed time")
	flag.Parse()

	if forceScalar {
		byteprim.Dispatch.SetCapabilities(0)
	}

	if showCaps {
		fmt.Println(byteprim.Dispatch.Capabilities())
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	h, n := []byte(haystack), []byte(needle)

	start := time.Now()
	var result string
	for i := 0; i < repeatCount; i++ {
		switch op {
		case "find":
			result = fmt.Sprintf("%d", byteprim.Find(h, n))
		case "rfind":
			result = fmt.Sprintf("%d", byteprim.RFind(h, n))
		case "order":
			result = fmt.Sprintf("%d", byteprim.Order(h, n))
		case "equal":
			result = fmt.Sprintf("%v", byteprim.ByteEqual(h, n))
		case "levenshtein":
			d, err := byteprim.Levenshtein(h, n)
			if err != nil {
				return err
			}
			result = fmt.Sprintf("%d", d)
		default:
			return fmt.Errorf("unknown op %q (want find, rfind, order, equal, levenshtein)", op)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("result=%s caps=%s elapsed=%s\n", result, byteprim.Dispatch.Capabilities(), elapsed)
	return nil
}
