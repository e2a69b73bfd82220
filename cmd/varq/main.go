// Package main provides the VarQ framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/varq-ml/varq/checkpoint"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("VarQ Framework %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: varq inspect <file.varq>")
				os.Exit(1)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "varq: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("VarQ - Variational Quantum Circuits for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  inspect <file>   Show a .varq checkpoint's header and parameters")
	fmt.Println("")
	fmt.Println("Coming soon: run, bench")
}

func inspect(path string) error {
	ckpt, err := checkpoint.Load(path)
	if err != nil {
		return err
	}

	h := ckpt.Header
	fmt.Printf("format version: %d\n", h.FormatVersion)
	fmt.Printf("created at:     %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("parameters:     %d\n", h.NParams)
	for k, v := range h.Metadata {
		fmt.Printf("metadata:       %s = %s\n", k, v)
	}
	if tm := h.Training; tm != nil {
		fmt.Printf("training:       epoch %d, loss %g, optimizer %s\n", tm.Epoch, tm.Loss, tm.OptimizerType)
	}
	for i, p := range ckpt.Params {
		fmt.Printf("  θ[%d] = %+.9f\n", i, p)
	}
	return nil
}
