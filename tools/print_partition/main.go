package main

import (
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/econloss/loss-calculator/internal/calculation"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: print_partition <start> <end> <date-of-birth>")
		return
	}

	var dates [3]civil.Date
	for i, arg := range os.Args[1:4] {
		d, err := civil.ParseDate(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad date %q: %v\n", arg, err)
			os.Exit(1)
		}
		dates[i] = d
	}

	buckets, err := calculation.Partition(dates[0], dates[1], dates[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, b := range buckets {
		fmt.Printf("%d %s..%s days=%d portion=%s age=%s\n",
			b.Year, b.Start, b.End, b.Days, b.PortionOfYear.StringFixed(4), b.Age.StringFixed(2))
	}
}
