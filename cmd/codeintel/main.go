// Command codeintel scans a repository, persists a content-hash index of
// it, and reports incremental diffs against that index on later runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brightforge/codeintel/internal/indexer"
	"github.com/brightforge/codeintel/pkg/engine"
	"github.com/brightforge/codeintel/pkg/types"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("codeintel %s (built %s)\n", version, buildTime)
		return
	}
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "scan":
		err = runScan(os.Args[2:])
	case "diff":
		err = runDiff(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("codeintel: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: codeintel scan [--index <file>] <path> | codeintel diff --index <file> <path>")
}

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	indexPath := fs.String("index", "", "path to write the resulting index to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("scan requires exactly one path argument")
	}
	root := fs.Arg(0)

	s := engine.New(indexer.DefaultConfig())
	result, err := s.Scan(root, func(processed, total int, current string) {
		if total > 0 && processed%500 == 0 {
			log.Printf("scanned %d/%d files (%s)", processed, total, current)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("scan %s: %d files, %d dirs, root hash %016x, %d skipped for size",
		result.ScanID, result.TotalFiles, result.TotalDirs, result.RootHash, result.SkippedSize)
	for _, e := range result.Errors {
		log.Printf("scan warning: %s", e)
	}

	if *indexPath != "" {
		if err := s.Save(*indexPath); err != nil {
			return fmt.Errorf("saving index: %w", err)
		}
		log.Printf("index written to %s", *indexPath)
	}
	return nil
}

func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	indexPath := fs.String("index", "", "path to the prior index; updated in place after the diff")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("diff requires exactly one path argument")
	}
	if *indexPath == "" {
		return fmt.Errorf("diff requires --index")
	}
	root := fs.Arg(0)

	s := engine.New(indexer.DefaultConfig())
	if err := s.Load(*indexPath); err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	diff, err := s.Update(root, nil)
	if err != nil {
		return err
	}

	log.Printf("diff %s: %d added, %d modified, %d deleted, %d renamed",
		diff.DiffID, diff.Added, diff.Modified, diff.Deleted, diff.Renamed)
	for _, c := range diff.Changes {
		if c.Kind == types.ChangeRenamed {
			fmt.Printf("R %s -> %s\n", c.OldPath, c.Path)
			continue
		}
		fmt.Printf("%s %s\n", string(c.Kind[:1]), c.Path)
	}

	if err := s.Save(*indexPath); err != nil {
		return fmt.Errorf("saving updated index: %w", err)
	}
	return nil
}
