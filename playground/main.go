package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/biostudies/biostudies-mcp-server/pkg/biostudies"
)

// Scratch program for poking the live BioStudies API by hand.
func main() {
	accession := "S-BSST1145"
	if len(os.Args) > 1 {
		accession = os.Args[1]
	}

	client := biostudies.NewClient(biostudies.DefaultAPIURL)
	ctx := context.Background()

	study := client.Study(ctx, accession)
	if !study.OK() {
		log.Fatalf("Failed to fetch study: %s", study.Text())
	}
	fmt.Printf("Study %s:\n%s\n", accession, study.Text())

	info := client.StudyInfo(ctx, accession)
	fmt.Printf("Info:\n%s\n", info.Text())

	search := client.Search(ctx, "query=cancer&pageSize=3")
	fmt.Printf("Search:\n%s\n", search.Text())
}
