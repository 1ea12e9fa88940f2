package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/plan"
)

// problem is one transform to plan.
type problem struct {
	n       int
	signs   []native.Sign
	inPlace bool
}

// parseProblem parses "[i|o][f|b]N". Without a direction both are planned;
// placement defaults to out-of-place.
func parseProblem(s string) (problem, error) {
	p := problem{signs: []native.Sign{native.Forward, native.Backward}}
	rest := strings.ToLower(s)

	if r, ok := strings.CutPrefix(rest, "i"); ok {
		p.inPlace, rest = true, r
	} else if r, ok := strings.CutPrefix(rest, "o"); ok {
		rest = r
	}
	if r, ok := strings.CutPrefix(rest, "f"); ok {
		p.signs, rest = []native.Sign{native.Forward}, r
	} else if r, ok := strings.CutPrefix(rest, "b"); ok {
		p.signs, rest = []native.Sign{native.Backward}, r
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return problem{}, fmt.Errorf("invalid size %q", s)
	}
	p.n = n
	return p, nil
}

func (a *app) generateCmd() *cobra.Command {
	var (
		output     string
		estimate   bool
		patient    bool
		exhaustive bool
	)

	cmd := &cobra.Command{
		Use:   "generate SIZE... -o FILE",
		Short: "Plan transforms and export the resulting wisdom",
		Long: `Generate plans every SIZE and writes the planner's wisdom to FILE.

A SIZE is an optional placement (i in-place, o out-of-place), an optional
direction (f forward, b backward) and the transform length:

  fftwisdom generate 64 128 if1024 ob4096 -o app.wisdom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := make([]problem, 0, len(args))
			for _, arg := range args {
				p, err := parseProblem(arg)
				if err != nil {
					return err
				}
				problems = append(problems, p)
			}

			flags := native.Measure
			switch {
			case exhaustive:
				flags = native.Exhaustive
			case patient:
				flags = native.Patient
			case estimate:
				flags = native.Estimate
			}

			var planned int
			for _, p := range problems {
				for _, sign := range p.signs {
					if err := planOne(a.domain, p.n, sign, flags, p.inPlace); err != nil {
						return fmt.Errorf("plan %d: %w", p.n, err)
					}
					planned++
				}
			}

			if err := a.domain.ExportWisdom(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "planned %d transforms, wisdom written to %s\n", planned, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "wisdom file to write")
	cmd.Flags().BoolVar(&estimate, "estimate", false, "plan heuristically (stores no wisdom)")
	cmd.Flags().BoolVar(&patient, "patient", false, "plan with more measurements")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "plan with the most measurements")
	cmd.MarkFlagsMutuallyExclusive("estimate", "patient", "exhaustive")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func planOne(d *fftwgo.Domain, n int, sign native.Sign, flags native.Flag, inPlace bool) error {
	switch d.Precision() {
	case native.Single:
		return planTyped[complex64](d, n, sign, flags, inPlace)
	case native.Double:
		return planTyped[complex128](d, n, sign, flags, inPlace)
	default:
		return errors.New("unsupported precision")
	}
}

func planTyped[T plan.Complex](d *fftwgo.Domain, n int, sign native.Sign, flags native.Flag, inPlace bool) error {
	in := plan.NewAligned[T](n)
	out := in
	if !inPlace {
		out = plan.NewAligned[T](n)
	}

	p, err := plan.NewC2CFor(d, in, out, sign, flags)
	if err != nil {
		return err
	}
	return p.Close()
}
