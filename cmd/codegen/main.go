package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/whitefusionhq/signalize/cmd/codegen/templates"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the N-ary Computed/Effect helpers package reactive can't spell with a variadic type list",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest arity to generate a Computed/Effect pair for",
				Value: 6,
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
	log.Printf("codegen for reactive started")
	defer func() {
		log.Printf("codegen for reactive finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(genericParamCountKey))
	if maxArity < 2 {
		maxArity = 2
	}
	log.Printf("generating arities 2..%d", maxArity)

	contents := templates.ReactiveGen(maxArity)
	return os.WriteFile("reactive/nary_generated.go", []byte(contents), 0644)
}
