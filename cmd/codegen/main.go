package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey   = "count"
	outKey     = "out"
	packageKey = "package"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity families for signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest callback arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the generated code to",
				Value: "signals/signals_gen.go",
			},
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "Package name of the generated file",
				Value: "signals",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signals started !")
	defer func() {
		log.Printf("Codegen for signals finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityKey))
	out := cmd.String(outKey)
	log.Printf("Arity 0..%d into %s", count, out)

	contents := templates.SignalsGen(cmd.String(packageKey), count)
	formatted, err := format.Source([]byte(contents))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	if err := os.WriteFile(out, formatted, 0644); err != nil {
		return err
	}

	return nil
}
