package main

import (
	"context"
	"fmt"
	"os"

	"github.com/econloss/loss-calculator/internal/calculation"
	"github.com/econloss/loss-calculator/internal/config"
)

// Compares the partitioned post-injury total with the closed-form wage loss estimate.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_wage_loss <input-file>")
		return
	}
	analyses, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	results, err := calculation.NewCalculationEngine().AssembleAll(context.Background(), analyses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, r := range results {
		s := r.Summary
		fmt.Printf("%s\n  partitioned nominal=%s present=%s\n  closed form=%s (%d rows)\n  difference=%s\n",
			r.Name,
			r.PostInjury.TotalFutureValue.StringFixed(2),
			s.PostInjuryLoss.StringFixed(2),
			s.WageLossEstimate.StringFixed(2),
			s.PostInjuryYears,
			s.PostInjuryLoss.Sub(s.WageLossEstimate).StringFixed(2))
	}
}
