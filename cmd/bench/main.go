package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/memotori"
)

var words = []string{"milk", "bank", "plumber", "idea", "refactor", "garden", "invoice", "meeting", "book", "train"}
var tagPool = []string{"home", "work", "errand", "later", "reading"}

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark database after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "memotori_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service, err := memotori.Open(filepath.Join(benchDir, "memo-tori.db"), memotori.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	defer service.Close()

	ctx := context.Background()

	fmt.Printf("Inserting %d notes...\n", *count)
	start := time.Now()
	for i := 0; i < *count; i++ {
		content := fmt.Sprintf("Note %d about %s and %s\nSome more text for the index.", i, words[i%len(words)], words[(i*7)%len(words)])
		tags := []string{tagPool[i%len(tagPool)], tagPool[(i/3)%len(tagPool)]}
		if _, err := service.InsertNote(ctx, content, tags); err != nil {
			panic(err)
		}
	}
	insert := time.Since(start)
	fmt.Printf("Insert took: %v (%.0f notes/s)\n", insert, float64(*count)/insert.Seconds())

	run := func(label string, fn func() (int, error)) {
		start := time.Now()
		n, err := fn()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-24s %12v (items: %d)\n", label, time.Since(start), n)
	}

	search := func(query string, tags ...string) func() (int, error) {
		return func() (int, error) {
			hits, err := service.SearchNotes(ctx, query, tags, memotori.DefaultSearchLimit)
			return len(hits), err
		}
	}

	run("List (recency)", search(""))
	run("Text (cold)", search("plumber"))
	run("Text (warm)", search("plumber"))
	run("Text prefix", search("refact*"))
	run("Tags (AND)", search("", "home", "work"))
	run("Text + tags", search("milk", "errand"))
	run("Tag prefix", func() (int, error) {
		tags, err := service.ListTagsPrefix(ctx, "wo", memotori.DefaultSuggestLimit)
		return len(tags), err
	})
}
