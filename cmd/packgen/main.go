// packgen samples balanced question packs: for each table field (method x
// attribute x axis) it draws N questions from the matching question bank so
// every participant answers the same number of prompts per cell, then
// writes per-participant packs and the pack manifest.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nnsriram27/physpropprior-study/internal/packs"
)

func main() {
	var (
		configPath        = flag.String("config", "config/table_fields.json", "field-definition file")
		dataRoot          = flag.String("data-root", "data", "directory holding the question banks")
		outputDir         = flag.String("output-dir", "data/packs", "folder to write participant packs into")
		participants      = flag.String("participants", "", "comma-separated participant ids (e.g. alice,bob)")
		count             = flag.Int("count", 0, "number of packs to auto-generate (ignored when -participants is set)")
		prefix            = flag.String("prefix", "user", "prefix for auto-generated ids")
		questionsPerField = flag.Int("questions-per-field", 0, "override the per-field question count from the config")
		seed              = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	fields, err := packs.LoadFields(*configPath)
	if err != nil {
		log.Fatalf("packgen: %v", err)
	}

	var ids []string
	if *participants != "" {
		for _, id := range strings.Split(*participants, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	} else if *count > 0 {
		ids = packs.AutoParticipants(*prefix, *count)
	} else {
		fmt.Fprintln(os.Stderr, "provide -participants or -count N to generate packs")
		os.Exit(1)
	}

	sampler := packs.NewSampler(*dataRoot, *outputDir, *questionsPerField, *seed)
	perPack, err := sampler.Generate(fields, ids)
	if err != nil {
		log.Fatalf("packgen: %v", err)
	}

	fmt.Printf("wrote %d packs to %s (%d questions each)\n", len(ids), *outputDir, perPack)
}
