// SPDX-License-Identifier: MIT

// Package report renders a presses.Summary as text, JSON or CBOR.
//
// Text is a tab-aligned table meant for terminals. JSON is indented. CBOR
// uses Core Deterministic Encoding, so the same summary always yields the
// same bytes, and can be read back with DecodeCBOR.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/factory/presses"
)

// ErrUnknownFormat is returned for a format other than text, json or cbor.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names accepted by Write.
const (
	Text = "text"
	JSON = "json"
	CBOR = "cbor"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("report: CBOR decoder initialization failed: " + err.Error())
	}
}

// Write renders sum to w in the named format.
func Write(w io.Writer, sum presses.Summary, format string) error {
	switch format {
	case Text, "":
		return writeText(w, sum)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	case CBOR:
		return encMode.NewEncoder(w).Encode(sum)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// DecodeCBOR reads one CBOR-encoded Summary from r.
func DecodeCBOR(r io.Reader) (presses.Summary, error) {
	var sum presses.Summary
	if err := decMode.NewDecoder(r).Decode(&sum); err != nil {
		return presses.Summary{}, fmt.Errorf("report: decoding summary: %w", err)
	}

	return sum, nil
}

func writeText(w io.Writer, sum presses.Summary) error {
	lights := sum.LightsTotal > 0 || sum.LightsInfeasible > 0
	for _, m := range sum.Machines {
		if m.Lights != nil {
			lights = true
			break
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "#\tENGINE\tPRESSES"
	if lights {
		header += "\tLIGHTS"
	}
	fmt.Fprintln(tw, header+"\tMACHINE")
	for _, m := range sum.Machines {
		line := fmt.Sprintf("%d\t%s\t%s", m.Index, m.Engine, count(m.Result))
		if lights {
			cell := "-"
			if m.Lights != nil {
				cell = count(*m.Lights)
			}
			line += "\t" + cell
		}
		fmt.Fprintln(tw, line+"\t"+m.Machine)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nstrategy %s: total %d over %d machines, %d infeasible\n",
		sum.Strategy, sum.Total, len(sum.Machines), sum.Infeasible)
	if err == nil && lights {
		_, err = fmt.Fprintf(w, "lights: total %d, %d infeasible\n", sum.LightsTotal, sum.LightsInfeasible)
	}

	return err
}

func count(r presses.Result) string {
	if !r.Feasible {
		return "infeasible"
	}

	return strconv.Itoa(r.Presses)
}
