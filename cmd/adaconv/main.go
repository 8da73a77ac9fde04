// Package main provides the adaconv CLI.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/adaconv-ml/adaconv"
	"github.com/adaconv-ml/adaconv/backend/parallel"
	"github.com/adaconv-ml/adaconv/backend/sequential"
	"github.com/adaconv-ml/adaconv/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("adaconv %s\n", version)
			return
		case "bench":
			bench()
			return
		}
	}

	fmt.Println("adaconv - locally-adaptive 2D convolution for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  bench      Time the evaluator backends on random data")
}

// bench times each backend's forward and backward passes on a realistic
// shape and reports the parallel speedup.
func bench() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	imgShape := tensor.Shape{1, 3, 128, 128}

	backends := []adaconv.Backend{sequential.New(), parallel.New()}

	for _, mode := range []adaconv.Mode{adaconv.Dense, adaconv.Separable} {
		const kernel = 5
		channels := kernel * kernel
		if mode == adaconv.Separable {
			channels = 2 * kernel
		}
		fltShape := tensor.Shape{1, channels, 128, 128}

		g, err := adaconv.Resolve(imgShape, fltShape, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}

		image := tensor.Randn[float32](imgShape, rng)
		filter := tensor.Randn[float32](fltShape, rng)
		grad := tensor.Randn[float32](imgShape, rng)

		fmt.Printf("%s mode, K=%d, image %v:\n", mode, g.Kernel, imgShape)
		for _, b := range backends {
			start := time.Now()
			b.Forward(image, filter, g)
			fwd := time.Since(start)

			start = time.Now()
			b.Backward(grad, image, filter, g)
			bwd := time.Since(start)

			fmt.Printf("  %-10s forward %8s   backward %8s\n", b.Name(), fwd.Round(time.Microsecond), bwd.Round(time.Microsecond))
		}
	}
}
