package memotori_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/memotori"
	"github.com/aretw0/memotori/pkg/capture"
)

// Example_basic captures two notes and searches the library.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "memotori-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := memotori.Open(filepath.Join(tmpDir, "memo-tori.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	ctx := context.Background()

	if _, err := svc.InsertNote(ctx, "Buy milk\nand bread", []string{"Home", "errand"}); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.InsertNote(ctx, "Call the bank", []string{"work"}); err != nil {
		log.Fatal(err)
	}

	hits, err := svc.SearchNotes(ctx, "milk", []string{"home"}, memotori.DefaultSearchLimit)
	if err != nil {
		log.Fatal(err)
	}
	for _, h := range hits {
		tags, _ := svc.GetNoteTags(ctx, h.ID)
		fmt.Println(capture.NoteTitle(h.Preview), tags)
	}
	// Output:
	// Buy milk [errand home]
}

// ExampleService_Watch shows the event stream published after each write.
func ExampleService_Watch() {
	tmpDir, err := os.MkdirTemp("", "memotori-watch-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := memotori.Open(filepath.Join(tmpDir, "memo-tori.db"),
		memotori.WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := svc.Watch(ctx)
	if err != nil {
		log.Fatal(err)
	}

	id, _ := svc.InsertNote(ctx, "draft", nil)
	_ = svc.ReplaceNoteTags(ctx, id, []string{"idea"})

	for i := 0; i < 2; i++ {
		e := <-events
		fmt.Println(e.Type, e.ID == id)
	}
	// Output:
	// CREATE true
	// RETAG true
}
