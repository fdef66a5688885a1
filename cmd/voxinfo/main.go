// Command voxinfo prints a human-readable summary of a vox file: envelope
// version, per-model dimensions and voxel counts, palette swatches, and
// optionally the chunk trace.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/logicossoftware/go-vox"
)

func main() {
	var (
		showTrace   bool
		showPalette bool
	)
	flag.BoolVar(&showTrace, "trace", false, "print the chunk trace")
	flag.BoolVar(&showPalette, "palette", false, "print the 256-entry palette")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: voxinfo [-trace] [-palette] <file.vox[.gz|.zst|.lz4|.br]>")
	}
	path := flag.Arg(0)

	doc, err := vox.DecodeFile(path)
	if err != nil {
		log.Fatalf("decode %s: %v", path, err)
	}

	header := color.New(color.Bold)
	dim := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	header.Printf("%s\n", path)
	fmt.Printf("  version %d, %d model(s)\n", doc.Version, len(doc.Models))
	for i, m := range doc.Models {
		used := map[uint8]struct{}{}
		for _, v := range m.Voxels {
			used[v.ColorIndex] = struct{}{}
		}
		fmt.Printf("  model %d: %dx%dx%d, %d voxel(s), %d color(s)\n",
			i, m.SizeX, m.SizeY, m.SizeZ, len(m.Voxels), len(used))
	}

	if showPalette {
		header.Println("  palette")
		for i := 1; i < 256; i++ {
			c := doc.Palette[i]
			swatch := color.RGB(int(c.R), int(c.G), int(c.B))
			swatch.Print("██")
			if i%32 == 0 {
				fmt.Println()
			}
		}
		fmt.Println()
	}

	if showTrace {
		header.Println("  trace")
		for _, line := range doc.Trace {
			if isWarning(line) {
				warn.Printf("    %s\n", line)
			} else {
				dim.Printf("    %s\n", line)
			}
		}
	}
}

func isWarning(line string) bool {
	return len(line) >= 7 && line[:7] == "warning"
}
