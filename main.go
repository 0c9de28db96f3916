package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fysac/jsf32/jsf"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func main() {
	l := log.New(os.Stderr, "", 0)

	seedList := flag.String("seed", "0", "seed, or comma-separated seeds with -json")
	count := flag.Int("n", 16, "number of 32-bit words to generate per seed")
	raw := flag.Bool("raw", false, "write raw little-endian bytes instead of hex lines")
	asJSON := flag.Bool("json", false, "write a json object mapping each seed to its outputs")
	outputFile := flag.String("out", "", "output file (default stdout; existing files are not overwritten)")
	flag.Parse()

	if *count <= 0 {
		l.Println("-n must be positive")
		flag.Usage()
		os.Exit(1)
	}

	seeds, err := parseSeeds(*seedList)
	if err != nil {
		l.Fatal(err)
	}
	if !*asJSON && len(seeds) != 1 {
		l.Println("multiple seeds are only supported with -json")
		flag.Usage()
		os.Exit(1)
	}

	var b []byte
	switch {
	case *asJSON:
		b, err = vectorJSON(seeds, *count)
		if err != nil {
			l.Fatal(err)
		}
	case *raw:
		b = make([]byte, 4*(*count))
		jsf.New(seeds[0]).Fill(b)
	default:
		b = hexWords(seeds[0], *count)
	}

	if *outputFile == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			l.Fatal(err)
		}
		return
	}
	if err := writeFileNoTrunc(*outputFile, b); err != nil {
		l.Fatal(err)
	}
	fmt.Println("Wrote output to", getAbsPath(*outputFile))
}

func parseSeeds(list string) ([]uint32, error) {
	var seeds []uint32
	for _, field := range strings.Split(list, ",") {
		seed, err := strconv.ParseUint(strings.TrimSpace(field), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %v", field, err)
		}
		seeds = append(seeds, uint32(seed))
	}
	return seeds, nil
}

func hexWords(seed uint32, count int) []byte {
	g := jsf.New(seed)
	var buf bytes.Buffer
	for i := 0; i < count; i++ {
		fmt.Fprintf(&buf, "0x%08x\n", g.Next())
	}
	return buf.Bytes()
}

// vectorJSON keeps the seeds in command-line order, so the output is stable
// enough to diff between runs.
func vectorJSON(seeds []uint32, count int) ([]byte, error) {
	vectors := orderedmap.New[string, []string]()

	for _, seed := range seeds {
		key := fmt.Sprintf("0x%08x", seed)
		if _, present := vectors.Get(key); present {
			return nil, fmt.Errorf("duplicate seed: %v", key)
		}

		g := jsf.New(seed)
		outputs := make([]string, count)
		for i := range outputs {
			outputs[i] = fmt.Sprintf("0x%08x", g.Next())
		}
		vectors.Set(key, outputs)
	}

	b, err := json.Marshal(vectors)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func getAbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

func writeFileNoTrunc(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		return err
	}
	return f.Close()
}
