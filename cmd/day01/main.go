package main

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/adventcalc/internal/cli"
	"github.com/bft-labs/adventcalc/internal/locations"
	"github.com/bft-labs/adventcalc/internal/output"
)

const longHelp = `
Compare two columns of location IDs.

Each input line holds two whitespace-separated integers. Both columns are
sorted independently and the absolute differences at each aligned index are
summed into the total distance. The similarity score adds up every left
value multiplied by the number of times it appears in the right column.

Any line that does not hold exactly two integers aborts the run. Blank lines
are tolerated only at the end of the file.
`

var exampleUsage = strings.TrimSpace(`
  day01
  day01 --input ./puzzle_input.txt --json
  day01 --watch --timings=false
`)

func program() cli.Program {
	return cli.Program{
		Use:     "day01",
		Short:   "Total distance and similarity score of two location ID columns",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Run:     calculate,
	}
}

func calculate(path string, log zerolog.Logger) (cli.Outcome, error) {
	res, err := locations.Run(path, log)
	if err != nil {
		return cli.Outcome{}, err
	}
	return cli.Outcome{
		Timings: res.Timings,
		Answers: []output.Answer{
			{Label: "Total distance", Value: res.Distance},
			{Label: "Similarity score", Value: res.Similarity},
		},
		Payload: res,
	}, nil
}

func main() {
	cli.Main(program())
}
