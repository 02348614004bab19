// Package sanity_check verifies the toolkit is wired correctly by
// parsing a handful of embedded annotation lines.
package sanity_check

import (
	"fmt"
	"os"

	"biogl_go/config"
	"biogl_go/gxf"
)

var probeLines = []string{
	"chr1\tEnsembl\tgene\t1000\t2000\t.\t+\t.\tID=gene1;Name=TEST",
	"chr2\tEnsembl\ttranscript\t5000\t6000\t.\t-\t.\tgene_id \"ENSG001\"; transcript_id \"ENST001\"",
	"chr3\tEnsembl\texon\t7000\t7200\t.\t+\t.\tID=shared_exon;Parent=tx1,tx2,tx3",
}

// Run parses the embedded probe lines and reports success or failure.
func Run(args []string) {
	for i, line := range probeLines {
		f, err := gxf.Parse(line, i+1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sanity check failed on probe %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if f.Start > f.Stop {
			fmt.Fprintf(os.Stderr, "Sanity check failed on probe %d: start > stop\n", i+1)
			os.Exit(1)
		}
	}
	fmt.Printf("Successfully running biogl_go! (%s)\n", config.MainVersion)
}
