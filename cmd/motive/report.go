// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/motive/dataset"
	"github.com/katalvlaran/motive/score"
)

// runReport is the output of the run command.
type runReport struct {
	ID         uuid.UUID
	Source     string
	Directed   bool
	Nodes      int
	Links      int
	Components int
	Stats      dataset.Stats
	Scored     *scored
}

// displayKey makes a canonical key printable on one line.
func displayKey(key string) string {
	return strings.ReplaceAll(key, "\x1f", ",")
}

func bits(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func direction(directed bool) string {
	if directed {
		return "directed"
	}

	return "undirected"
}

// modelHeader returns "<m>" and "<m>_factor" per model.
func modelHeader(models []score.Model) []string {
	cols := make([]string, 0, 2*len(models))
	for _, m := range models {
		cols = append(cols, m.String(), m.String()+"_factor")
	}

	return cols
}

// motifRows renders one row per result; skipped motifs get "-" cells.
func (r *runReport) motifRows() [][]string {
	s := r.Scored
	rows := make([][]string, 0, len(s.results))
	for _, res := range s.results {
		row := []string{
			displayKey(res.Key),
			strconv.Itoa(res.Motif.Size()),
			strconv.Itoa(res.Motif.NumLinks()),
			strconv.Itoa(len(res.Occurrences)),
		}
		for _, m := range s.models {
			f, ok := s.factor(res.Key, m)
			if !ok {
				row = append(row, "-", "-")
				continue
			}
			row = append(row, bits(s.baselines[m]-f), bits(f))
		}
		rows = append(rows, row)
	}

	return rows
}

func (r *runReport) write(w io.Writer, format string) error {
	if format == formatCSV {
		return r.writeCSV(w)
	}

	return r.writeText(w)
}

func (r *runReport) writeText(w io.Writer) error {
	s := r.Scored
	base := make([]string, 0, len(s.models))
	for _, m := range s.models {
		base = append(base, m.String()+"="+bits(s.baselines[m]))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.ID)
	fmt.Fprintf(tw, "graph\t%s, %s, %s nodes, %s links, %s components\n", r.Source, direction(r.Directed),
		humanize.Comma(int64(r.Nodes)), humanize.Comma(int64(r.Links)), humanize.Comma(int64(r.Components)))
	if r.Stats.Loops > 0 || r.Stats.Duplicates > 0 {
		fmt.Fprintf(tw, "dropped\t%d self-loops, %d duplicate links\n", r.Stats.Loops, r.Stats.Duplicates)
	}
	fmt.Fprintf(tw, "baseline\t%s\n", strings.Join(base, " "))
	fmt.Fprintf(tw, "motifs\t%d (%d skipped)\n", len(s.results), len(s.batch.Skipped))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(s.results) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := append([]string{"key", "size", "links", "occurrences"}, modelHeader(s.models)...)
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
	for _, row := range r.motifRows() {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	return tw.Flush()
}

func (r *runReport) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"run_id", "key", "size", "links", "occurrences"}, modelHeader(r.Scored.models)...)
	if err := cw.Write(header); err != nil {
		return err
	}
	id := r.ID.String()
	for _, row := range r.motifRows() {
		if err := cw.Write(append([]string{id}, row...)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// syntheticRow is one planted-motif graph of the synthetic experiment.
type syntheticRow struct {
	Instances int
	Run       int
	Nodes     int
	Links     int
	// Rank is the 1-based position of the planted motif among the
	// extracted motifs, 0 when it was not extracted.
	Rank   int
	Scored *scored
	Key    string
}

// syntheticReport is the output of the synthetic command.
type syntheticReport struct {
	ID    uuid.UUID
	Motif string
	Size  int
	Arcs  int
	Rows  []syntheticRow
}

func (r *syntheticReport) models() []score.Model {
	if len(r.Rows) == 0 {
		return allModels
	}

	return r.Rows[0].Scored.models
}

func (r *syntheticReport) cells() [][]string {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := []string{
			strconv.Itoa(row.Instances),
			strconv.Itoa(row.Run),
			strconv.Itoa(row.Nodes),
			strconv.Itoa(row.Links),
			strconv.Itoa(row.Rank),
		}
		for _, m := range row.Scored.models {
			f, ok := row.Scored.factor(row.Key, m)
			if !ok {
				cells = append(cells, "-", "-")
				continue
			}
			cells = append(cells, bits(row.Scored.baselines[m]), bits(f))
		}
		rows = append(rows, cells)
	}

	return rows
}

// syntheticHeader lists baseline and factor columns per model; the score
// itself is baseline minus factor.
func syntheticHeader(models []score.Model) []string {
	cols := []string{"instances", "run", "nodes", "links", "rank"}
	for _, m := range models {
		cols = append(cols, m.String()+"_baseline", m.String()+"_factor")
	}

	return cols
}

func (r *syntheticReport) write(w io.Writer, format string) error {
	if format == formatCSV {
		cw := csv.NewWriter(w)
		if err := cw.Write(append([]string{"run_id"}, syntheticHeader(r.models())...)); err != nil {
			return err
		}
		for _, c := range r.cells() {
			if err := cw.Write(append([]string{r.ID.String()}, c...)); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.ID)
	fmt.Fprintf(tw, "motif\t%s (%d nodes, %d links)\n", displayKey(r.Motif), r.Size, r.Arcs)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(syntheticHeader(r.models()), "\t")+"\t")
	for _, c := range r.cells() {
		fmt.Fprintln(tw, strings.Join(c, "\t")+"\t")
	}

	return tw.Flush()
}
