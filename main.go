package main

import (
	"fmt"
	"os"
	"strings"

	"biogl_go/benchmark"
	"biogl_go/config"
	"biogl_go/fasta_overview"
	"biogl_go/gxf_scan"
	"biogl_go/ran_seq"
	"biogl_go/sanity_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`biogl - Custom Help Menu
Usage:
  biogl <tool> [options]

Tools:
  gxf_scan		Parse a GFF3/GTF annotation file and summarize it
  fasta_overview	Summary statistics of a FASTA file
  ran_seq		Generate a random sequence as FASTA
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Reports execution time and memory usage
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("biogl - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tbiogl:\t\t\t%s\n", config.MainVersion)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tGXF Scan:\t\t%s\n", config.GxfScan)
	fmt.Printf("\tFASTA Overview:\t\t%s\n", config.FastaOverview)
	fmt.Printf("\tRandom Seq Generator:\t%s\n", config.RanSeq)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.SanityCheck)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "gxf_scan":
			gxf_scan.Run(cleanedArgs)
		case "fasta_overview":
			fasta_overview.Run(cleanedArgs)
		case "ran_seq":
			ran_seq.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("biogl %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
