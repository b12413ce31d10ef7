// Command kernelinfo prints the detected host capabilities, every registered
// kernel variant, and which variant the dispatch layer selects.
//
// Usage:
//
//	kernelinfo [flags]
//
// Examples:
//
//	kernelinfo
//	kernelinfo -force-baseline
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-intdsp/internal/cpu"
	"github.com/cwbudde/algo-intdsp/internal/kernels/registry"

	_ "github.com/cwbudde/algo-intdsp/internal/kernels/arch/baseline"
	_ "github.com/cwbudde/algo-intdsp/internal/kernels/arch/packed"
)

func main() {
	forceBaseline := flag.Bool("force-baseline", false, "resolve selection as if packed arithmetic were unavailable")
	flag.Parse()

	features := cpu.DetectFeatures()
	if *forceBaseline {
		features.ForceBaseline = true
	}

	fmt.Printf("architecture:      %s\n", features.Architecture)
	fmt.Printf("sse2:              %v\n", features.HasSSE2)
	fmt.Printf("neon:              %v\n", features.HasNEON)
	fmt.Printf("packed arithmetic: %v\n", features.HasPackedArith())
	fmt.Printf("force baseline:    %v\n", features.ForceBaseline)
	fmt.Println()

	selected := registry.Global.Lookup(features)
	if selected == nil {
		fmt.Fprintln(os.Stderr, "kernelinfo: no kernel implementation registered")
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tLEVEL\tPRIORITY\tSELECTED")
	for _, entry := range registry.Global.ListEntries() {
		mark := ""
		if entry.Name == selected.Name {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Name, entry.Level, entry.Priority, mark)
	}
	w.Flush()
}
