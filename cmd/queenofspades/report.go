package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/queenofspades/internal/simulator"
	"github.com/lox/queenofspades/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// printReport renders the run summary as tables
func printReport(out io.Writer, report *simulator.Report) {
	s := report.Summary

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Queen of Spades • %d players", report.Players)))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("run %s • seed %d • %d batches × %d games",
		report.RunID, report.Seed, report.Batches, report.Games)))
	if report.DeterministicShuffle {
		fmt.Fprintln(out, dimStyle.Render("deterministic shuffle"))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, playerTable(s))
	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("seat fairness: wins χ²=%.2f p=%.3f, losses χ²=%.2f p=%.3f (df %d)",
		s.WinFairness.ChiSquare, s.WinFairness.PValue,
		s.LossFairness.ChiSquare, s.LossFairness.PValue, s.LossFairness.DegreesOfFreedom)))

	if s.NoWinner > 0 {
		fmt.Fprintf(out, "\n%d games had no winner\n", s.NoWinner)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("turns per game"))
	fmt.Fprintln(out, turnsTable(s.Turns))
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("mean turns per batch"))
	for i, mean := range s.BatchMeanTurns {
		fmt.Fprintf(out, "  %d: %.2f\n", i, mean)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d games in %v (%.0f games/sec)",
		s.Games, report.Duration.Round(time.Millisecond), report.GamesPerSecond())))
}

// playerTable lists per player outcomes. Box columns are per-batch win counts.
func playerTable(s *statistics.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1 || col == 2:
				return winStyle.Padding(0, 1)
			case col == 3 || col == 4:
				return lossStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("player", "wins", "win%", "losses", "loss%", "wins/batch (min q1 med q3 max)")

	for p := range s.Players {
		box := s.WinBoxes[p]
		t.Row(
			fmt.Sprintf("%d", p),
			fmt.Sprintf("%d", s.Wins[p]),
			fmt.Sprintf("%.1f%%", s.WinRate[p]*100),
			fmt.Sprintf("%d", s.Losses[p]),
			fmt.Sprintf("%.1f%%", s.LossRate[p]*100),
			fmt.Sprintf("%.0f %.1f %.1f %.1f %.0f", box.Min, box.Q1, box.Median, box.Q3, box.Max),
		)
	}
	return t.String()
}

func turnsTable(ts statistics.TurnSummary) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Row("mean", fmt.Sprintf("%.2f", ts.Mean), fmt.Sprintf("95%% CI [%.2f, %.2f]", ts.CI95Low, ts.CI95High)).
		Row("median", fmt.Sprintf("%.1f", ts.Median), fmt.Sprintf("stddev %.2f, stderr %.3f", ts.StdDev, ts.StdError)).
		Row("range", fmt.Sprintf("%.0f-%.0f", ts.Min, ts.Max),
			fmt.Sprintf("P5=%.0f P25=%.0f P75=%.0f P95=%.0f", ts.P5, ts.P25, ts.P75, ts.P95)).
		String()
}
