package main

import (
	"fmt"
	"os"

	"github.com/pharmanav/ndcfinder/config"
	"github.com/pharmanav/ndcfinder/output"
	"github.com/pharmanav/ndcfinder/resolver"
	"github.com/pharmanav/ndcfinder/resolver/entities"
	"github.com/pharmanav/ndcfinder/validation"
)

// runLookup performs one CLI resolution and writes the result to a CSV file
// or the console. Zero records is an informational outcome, not an error.
func runLookup(drug, class, csvPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	term := drug
	kind := "drug"
	if class != "" {
		term = class
		kind = "class"
	}

	if err := validation.ValidateTerm(term); err != nil {
		return fmt.Errorf("invalid search term: %w", err)
	}
	term = validation.NormalizeTerm(term)

	client := resolver.NewClient(cfg, false)
	res := resolver.New(client, client)
	res.SetProgress(func(done, total int) {
		fmt.Printf("\rFetching NDC properties... %d/%d", done, total)
		if done == total {
			fmt.Println()
		}
	})

	fmt.Printf("Resolving %s %q...\n", kind, term)

	var records []entities.NDCRecord
	if kind == "drug" {
		records, err = res.ResolveDrug(term)
	} else {
		records, err = res.ResolveClass(term)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No concepts identified for %s %q. 0 records.\n", kind, term)
		return nil
	}

	if csvPath != "" {
		if err := output.WriteCSV(csvPath, records); err != nil {
			return err
		}
		fmt.Printf("Wrote %d record(s) to %s\n", len(records), csvPath)
		return nil
	}

	return output.RenderTable(os.Stdout, records)
}
