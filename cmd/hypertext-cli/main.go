package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-hypertext/internal/prompt"
	"github.com/goliatone/go-hypertext/pkg/hypertext"
	"github.com/goliatone/go-hypertext/pkg/placeholder"
)

func main() {
	input := flag.String("input", "fragment.yaml", "fragment document path")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing values")
	flag.Parse()

	ctx := context.Background()

	doc, err := placeholder.LoadDocumentFile(*input)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	if *interactive {
		if err := fillMissing(ctx, doc); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				log.Fatalf("Aborted")
			}
			log.Fatalf("Failed to collect values: %v", err)
		}
	}

	parts, err := doc.Parts()
	if err != nil {
		log.Fatalf("Failed to resolve template: %v", err)
	}

	result, err := hypertext.Build(parts)
	if err != nil {
		log.Fatalf("Failed to build fragment: %v", err)
	}

	var buf bytes.Buffer
	if err := result.Render(&buf); err != nil {
		log.Fatalf("Failed to render fragment: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
	} else {
		fmt.Println(buf.String())
	}
}

func fillMissing(ctx context.Context, doc *placeholder.Document) error {
	missing, err := doc.MissingNames()
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	driver := prompt.NewSurveyDriver()
	if doc.Values == nil {
		doc.Values = make(map[string]any, len(missing))
	}
	for _, name := range missing {
		answer, err := driver.Input(ctx, prompt.InputConfig{
			Message: fmt.Sprintf("Value for {%s}:", name),
		})
		if err != nil {
			return err
		}
		doc.Values[name] = answer
	}
	return nil
}
