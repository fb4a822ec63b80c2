package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/voxground/voxground/pkg/engine"
)

// voxground evaluates a sculpt script and writes the extracted terrain
// surface as a Wavefront OBJ file.
func main() {
	out := flag.String("o", "terrain.obj", "output OBJ path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-o out.obj] script.vx\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	eng := engine.NewEngine()
	m, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluate fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, e.Error())
		}
		os.Exit(1)
	}
	if m == nil {
		log.Fatalf("%s produced no mesh; scripts end with a (mesh ...) call", path)
	}

	if err := m.WriteOBJFile(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %d triangles to %s", m.TriangleCount(), *out)
}
