package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"invoice-builder/internal/core"
	"invoice-builder/internal/render"

	"github.com/invopop/jsonschema"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(args []string) {
	switch args[0] {
	case "render", "r":
		runRender(args[1:])

	case "schema":
		runSchema()

	case "number", "n":
		fmt.Println(core.DefaultInvoiceNumber(time.Now()))

	default:
		log.Fatalf("Unknown command: %s\nAvailable: render, schema, number", args[0])
	}
}

// runRender reads an InvoiceFile from a path (or stdin) and writes the
// printable HTML document to stdout or the -o target.
func runRender(args []string) {
	var inPath, outPath string
	for i := 0; i < len(args); i++ {
		if args[i] == "-o" {
			i++
			if i >= len(args) {
				log.Fatal("Usage: app render [invoice.json] [-o out.html]")
			}
			outPath = args[i]
			continue
		}
		inPath = args[i]
	}

	var in io.Reader = os.Stdin
	if inPath != "" && inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			log.Fatalf("Cannot read %s: %v", inPath, err)
		}
		defer f.Close()
		in = f
	}

	var file InvoiceFile
	if err := json.NewDecoder(in).Decode(&file); err != nil {
		log.Fatalf("Invalid JSON: %v", err)
	}

	doc, err := render.Render(file.Snapshot(), render.Options{})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if outPath == "" {
		os.Stdout.Write(doc)
		return
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		log.Fatalf("Cannot write %s: %v", outPath, err)
	}
	fmt.Printf("Wrote %s\n", outPath)
}

// runSchema emits the JSON Schema for the InvoiceFile format.
func runSchema() {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v InvoiceFile
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reflector.Reflect(v)); err != nil {
		log.Fatalf("Schema generation failed: %v", err)
	}
}
