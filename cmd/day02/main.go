package main

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/adventcalc/internal/cli"
	"github.com/bft-labs/adventcalc/internal/output"
	"github.com/bft-labs/adventcalc/internal/reports"
)

const longHelp = `
Count safe reactor reports.

Each input line is one report: a whitespace-separated list of levels. A
report is safe when the levels are strictly increasing or strictly
decreasing and every adjacent pair differs by 1 to 3. With the problem
dampener a report is also safe when removing a single level makes it safe.
`

var exampleUsage = strings.TrimSpace(`
  day02
  day02 --input ../puzzle_input.txt
  day02 --json --log-level debug
`)

func program() cli.Program {
	return cli.Program{
		Use:     "day02",
		Short:   "Count safe reports with and without the problem dampener",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Run:     calculate,
	}
}

func calculate(path string, log zerolog.Logger) (cli.Outcome, error) {
	res, err := reports.Run(path, log)
	if err != nil {
		return cli.Outcome{}, err
	}
	return cli.Outcome{
		Timings: res.Timings,
		Answers: []output.Answer{
			{Label: "Safe reports", Value: int64(res.Part1)},
			{Label: "Safe reports with dampener", Value: int64(res.Part2)},
		},
		Payload: res,
	}, nil
}

func main() {
	cli.Main(program())
}
