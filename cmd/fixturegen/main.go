package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	fixturegen "github.com/goliatone/go-fixturegen"
	"github.com/goliatone/go-fixturegen/pkg/batch"
	"github.com/goliatone/go-fixturegen/pkg/fixture"
	"github.com/goliatone/go-fixturegen/pkg/openapi"
)

func main() {
	var (
		kindFlag        = flag.String("kind", "", "fixture kind to generate (see -list)")
		nameFlag        = flag.String("name", "", "fixture name (defaults to the kind)")
		scopeFlag       = flag.String("scope", "function", "fixture scope (scoped kind only)")
		paramsFlag      = flag.String("params", "[1, 2]", "parameter list (parametrized kind only)")
		batchFlag       = flag.String("batch", "", "YAML batch definition file; renders a full fixture document")
		sourceFlag      = flag.String("source", "", "OpenAPI document path or URL; derives data fixtures from its schemas")
		outputFlag      = flag.String("output", "", "output file (stdout if empty)")
		listFlag        = flag.Bool("list", false, "list registered fixture kinds and exit")
		interactiveFlag = flag.Bool("interactive", false, "prompt for kind, name, and parameters")
		timeoutFlag     = flag.Duration("timeout", 15*time.Second, "generation timeout")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fixturegen: ")

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	gen := fixturegen.NewGenerator()

	if *listFlag {
		for _, kind := range gen.Registry().List() {
			fmt.Println(kind)
		}
		return
	}

	var (
		rendered string
		err      error
	)

	switch {
	case *interactiveFlag:
		var req fixture.Request
		req, err = promptRequest(gen.Registry())
		if err != nil {
			log.Fatalf("prompt: %v", err)
		}
		rendered, err = gen.Generate(ctx, req)
	case *sourceFlag != "":
		rendered, err = generateFromSource(ctx, gen, *sourceFlag)
	case *batchFlag != "":
		var defs []fixture.Definition
		defs, err = batch.Load(*batchFlag)
		if err != nil {
			log.Fatalf("load batch: %v", err)
		}
		rendered, err = gen.GenerateBatch(ctx, defs)
	default:
		if *kindFlag == "" {
			flag.Usage()
			os.Exit(2)
		}
		var kind fixture.Kind
		kind, err = fixture.ParseKind(*kindFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		name := *nameFlag
		if name == "" {
			name = string(kind)
		}
		rendered, err = gen.Generate(ctx, fixture.Request{
			Kind:   kind,
			Name:   name,
			Params: explicitParams(*scopeFlag, *paramsFlag),
		})
	}
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *outputFlag == "" {
		fmt.Print(rendered)
		return
	}

	if err := writeFile(*outputFlag, []byte(rendered)); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %d bytes to %s", len(rendered), *outputFlag)
}

// explicitParams collects only the parameter flags the user actually set so
// registry defaults stay in charge otherwise.
func explicitParams(scope, params string) map[string]string {
	out := make(map[string]string, 2)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scope":
			out["scope"] = scope
		case "params":
			out["params"] = params
		}
	})
	return out
}

func generateFromSource(ctx context.Context, gen generatorWithBatch, raw string) (string, error) {
	loader := fixturegen.NewLoader(openapi.WithHTTPClient(http.DefaultClient))

	doc, err := loader.Load(ctx, parseSource(raw))
	if err != nil {
		return "", fmt.Errorf("load document: %w", err)
	}

	defs, err := openapi.Definitions(ctx, doc)
	if err != nil {
		return "", err
	}

	return gen.GenerateBatch(ctx, defs)
}

type generatorWithBatch interface {
	GenerateBatch(ctx context.Context, defs []fixture.Definition) (string, error)
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
