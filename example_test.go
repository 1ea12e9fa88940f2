package fftwgo_test

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
	"github.com/hupe1980/fftwgo/plan"
	"github.com/hupe1980/fftwgo/pool"
)

// Example demonstrates multi-threaded planning and execution on a worker pool.
func Example() {
	wp := pool.NewWorkerPool(4)
	defer wp.Close()

	d := fftwgo.NewDomain(ref.New(native.Double), fftwgo.WithWorkerPool(wp))
	if err := d.InitThreads(); err != nil {
		log.Fatal(err)
	}
	d.SetThreadCount(4)

	p, err := plan.NewC2C[complex128](d, 8, native.Forward, native.Estimate)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	in, out := plan.NewAligned[complex128](8), plan.NewAligned[complex128](8)
	for i := range in {
		in[i] = complex(math.Cos(2*math.Pi*float64(i)/8), 0)
	}
	if err := p.Execute(in, out); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("threads=%d bin1=%.1f bin7=%.1f\n", p.Threads(), real(out[1]), real(out[7]))
	// Output: threads=4 bin1=4.0 bin7=4.0
}

// Example_wisdom demonstrates exporting wisdom and reusing it in a fresh domain.
func Example_wisdom() {
	dir, err := os.MkdirTemp("", "wisdom")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "double.wisdom")

	src := fftwgo.NewDomain(ref.New(native.Double, ref.WithMeasureRuns(1)), fftwgo.WithPoolSize(1))
	p, err := plan.NewC2C[complex128](src, 64, native.Forward, native.Measure)
	if err != nil {
		log.Fatal(err)
	}
	p.Close()
	if err := src.ExportWisdom(path); err != nil {
		log.Fatal(err)
	}

	dst := fftwgo.NewDomain(ref.New(native.Double), fftwgo.WithPoolSize(1))
	if err := dst.ImportWisdom(path); err != nil {
		log.Fatal(err)
	}
	q, err := plan.NewC2C[complex128](dst, 64, native.Forward, native.Measure|native.WisdomOnly)
	if err != nil {
		log.Fatal(err)
	}
	defer q.Close()

	fmt.Println("planned from wisdom")
	// Output: planned from wisdom
}

// Example_errors demonstrates classifying wisdom failures.
func Example_errors() {
	d := fftwgo.NewDomain(ref.New(native.Single), fftwgo.WithPoolSize(1))

	for _, path := range []string{"", "wis\x00dom", "wisdom\xff", "/does/not/exist"} {
		err := d.ImportWisdom(path)
		fmt.Println(fftwgo.KindOf(err))
	}

	var nulErr *native.NulError
	err := d.ExportWisdom("wis\x00dom")
	fmt.Println(errors.As(err, &nulErr), nulErr.Pos)

	// Output:
	// wisdom-import-failed
	// path-conversion
	// path-encoding
	// wisdom-import-failed
	// true 3
}
