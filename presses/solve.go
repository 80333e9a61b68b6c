// SPDX-License-Identifier: MIT

package presses

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/factory/bfs"
	"github.com/katalvlaran/factory/freevar"
	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/matrix"
	"github.com/katalvlaran/factory/parity"
	"github.com/katalvlaran/factory/pbsolve"
)

// Result is the answer for one machine. An unreachable target is a normal
// result with Feasible == false.
type Result struct {
	Presses   int      `json:"presses" cbor:"1,keyasint"`
	PerButton []int    `json:"per_button,omitempty" cbor:"2,keyasint,omitempty"`
	Feasible  bool     `json:"feasible" cbor:"3,keyasint"`
	Strategy  Strategy `json:"-" cbor:"-"`
}

// Solve returns the minimal number of presses that brings m's counters
// exactly to its target.
//
// Errors: ErrNilMachine, option errors, matrix.ErrArithmeticOverflow (when
// no fallback applies), parity.ErrTooManyButtons, freevar.ErrNodeLimit,
// bfs.ErrStateLimit, pbsolve.ErrTooLarge, the context error, ErrVerify.
func Solve(m *machine.Machine, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return solve(m, o)
}

func solve(m *machine.Machine, o Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMachine
	}

	started := time.Now()
	res, err := dispatch(m, o)
	if err != nil {
		return Result{}, err
	}
	if res.Feasible {
		if err := Verify(m, res.PerButton); err != nil {
			return Result{}, fmt.Errorf("%s: %w", res.Strategy, err)
		}
	}
	o.Logger.Debug("machine solved",
		"strategy", res.Strategy.String(),
		"buttons", m.NumButtons(),
		"lights", m.Lights(),
		"presses", res.Presses,
		"feasible", res.Feasible,
		"elapsed", time.Since(started),
	)

	return res, nil
}

// dispatch runs the selected engine.
func dispatch(m *machine.Machine, o Options) (Result, error) {
	switch o.Strategy {
	case Auto:
		res, err := viaReduction(m, o)
		if errors.Is(err, matrix.ErrArithmeticOverflow) && m.NumButtons() <= o.MaxButtons {
			o.Logger.Debug("reduction overflowed, falling back to bifurcation", "buttons", m.NumButtons())
			return viaBifurcation(m, o)
		}
		return res, err
	case Reduction:
		return viaReduction(m, o)
	case Bifurcation:
		return viaBifurcation(m, o)
	case BreadthFirst:
		return viaBFS(m, o)
	case PseudoBoolean:
		return viaPB(m, o)
	default:
		return Result{}, fmt.Errorf("Strategy(%d): %w", int(o.Strategy), ErrUnknownStrategy)
	}
}

func viaReduction(m *machine.Machine, o Options) (Result, error) {
	aug, err := matrix.FromMachine(m)
	if err != nil {
		return Result{}, err
	}
	sys, err := matrix.Reduce(aug)
	if err != nil {
		return Result{}, err
	}
	sol, err := freevar.Search(sys,
		freevar.WithContext(o.Ctx),
		freevar.WithBound(o.Bound),
		freevar.WithNodeLimit(o.NodeLimit),
	)
	if errors.Is(err, freevar.ErrInfeasible) {
		return Result{Strategy: Reduction}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("free-variable search",
		"free", sys.NumFree(),
		"pivots", len(sys.Pivots),
		"nodes", sol.Nodes,
	)

	return Result{Presses: sol.Total, PerButton: sol.Presses, Feasible: true, Strategy: Reduction}, nil
}

func viaBifurcation(m *machine.Machine, o Options) (Result, error) {
	table, err := parity.NewTable(m.Buttons(), m.Lights(), parity.WithMaxButtons(o.MaxButtons))
	if err != nil {
		return Result{}, err
	}
	solver := table.NewSolver()
	res, err := solver.Solve(m.Target())
	if errors.Is(err, parity.ErrUnreachable) {
		return Result{Strategy: Bifurcation}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("bifurcation", "memo", solver.MemoSize())

	return Result{Presses: res.Total, PerButton: res.Presses, Feasible: true, Strategy: Bifurcation}, nil
}

func viaBFS(m *machine.Machine, o Options) (Result, error) {
	res, err := bfs.Presses(m.Buttons(), m.Target(),
		bfs.WithContext(o.Ctx),
		bfs.WithMaxStates(o.MaxStates),
	)
	if errors.Is(err, bfs.ErrUnreachable) {
		return Result{Strategy: BreadthFirst}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("breadth-first", "visited", res.Visited)

	return Result{Presses: res.Presses, PerButton: res.PerButton, Feasible: true, Strategy: BreadthFirst}, nil
}

func viaPB(m *machine.Machine, o Options) (Result, error) {
	res, err := pbsolve.Solve(m.Buttons(), m.Target())
	if errors.Is(err, pbsolve.ErrInfeasible) {
		return Result{Strategy: PseudoBoolean}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("pseudo-boolean", "vars", res.Vars)

	return Result{Presses: res.Total, PerButton: res.Presses, Feasible: true, Strategy: PseudoBoolean}, nil
}

// SolveLights answers the light-diagram problem for m: the fewest presses
// that leave exactly the '#' lights odd. Only MaxButtons and Logger options
// apply. Results are labeled MinToggle.
//
// Errors: ErrNilMachine, ErrNoDiagram, parity.ErrTooManyButtons.
func SolveLights(m *machine.Machine, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return solveLights(m, o)
}

func solveLights(m *machine.Machine, o Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMachine
	}
	if !m.HasDiagram() {
		return Result{}, ErrNoDiagram
	}
	table, err := parity.NewTable(m.Buttons(), m.Lights(), parity.WithMaxButtons(o.MaxButtons))
	if err != nil {
		return Result{}, err
	}
	s, err := table.MinToggle(m.Diagram())
	if errors.Is(err, parity.ErrUnreachable) {
		return Result{Strategy: MinToggle}, nil
	}
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("lights solved", "diagram", m.Diagram().String(), "presses", s.Size)

	return Result{Presses: s.Size, PerButton: table.PressVector(s), Feasible: true, Strategy: MinToggle}, nil
}

// Verify reports whether pressing button b perButton[b] times reproduces
// m's target exactly.
func Verify(m *machine.Machine, perButton []int) error {
	if m == nil {
		return ErrNilMachine
	}
	for b, n := range perButton {
		if n < 0 {
			return fmt.Errorf("button %d pressed %d times: %w", b, n, ErrVerify)
		}
	}
	got, err := m.Apply(perButton)
	if err != nil {
		return err
	}
	if want := m.Target(); !got.Equal(want) {
		return fmt.Errorf("got %s, want %s: %w", got, want, ErrVerify)
	}

	return nil
}

// MachineReport is one line of a Summary.
type MachineReport struct {
	Index   int     `json:"index" cbor:"1,keyasint"`
	Machine string  `json:"machine" cbor:"2,keyasint"`
	Result  Result  `json:"result" cbor:"3,keyasint"`
	Lights  *Result `json:"lights,omitempty" cbor:"4,keyasint,omitempty"`

	// Engine is the strategy that produced Result (Auto resolves to the
	// engine actually used).
	Engine string `json:"engine" cbor:"5,keyasint"`
}

// Summary aggregates the results of SolveAll.
type Summary struct {
	Strategy         string          `json:"strategy" cbor:"1,keyasint"`
	Machines         []MachineReport `json:"machines" cbor:"2,keyasint"`
	Total            int             `json:"total" cbor:"3,keyasint"`
	Infeasible       int             `json:"infeasible" cbor:"4,keyasint"`
	LightsTotal      int             `json:"lights_total,omitempty" cbor:"5,keyasint,omitempty"`
	LightsInfeasible int             `json:"lights_infeasible,omitempty" cbor:"6,keyasint,omitempty"`
}

// SolveAll solves machines one after another and sums the feasible press
// counts; infeasible machines are counted, not summed. With WithLights the
// light-diagram problem is answered for every machine that has a diagram.
// The first engine error aborts the run and is returned with the machine's
// index, together with the partial Summary.
func SolveAll(machines []*machine.Machine, opts ...Option) (Summary, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Strategy: o.Strategy.String(),
		Machines: make([]MachineReport, 0, len(machines)),
	}
	started := time.Now()
	for i, m := range machines {
		if err := o.Ctx.Err(); err != nil {
			return sum, fmt.Errorf("machine %d: %w", i, err)
		}
		res, err := solve(m, o)
		if err != nil {
			return sum, fmt.Errorf("machine %d: %w", i, err)
		}
		rep := MachineReport{Index: i, Machine: m.String(), Result: res, Engine: res.Strategy.String()}
		if res.Feasible {
			sum.Total += res.Presses
		} else {
			sum.Infeasible++
			o.Logger.Warn("machine infeasible", "index", i, "machine", rep.Machine)
		}

		if o.Lights && m.HasDiagram() {
			lr, err := solveLights(m, o)
			if err != nil {
				return sum, fmt.Errorf("machine %d lights: %w", i, err)
			}
			rep.Lights = &lr
			if lr.Feasible {
				sum.LightsTotal += lr.Presses
			} else {
				sum.LightsInfeasible++
			}
		}
		sum.Machines = append(sum.Machines, rep)
	}

	attrs := []any{
		"machines", len(machines),
		"total", sum.Total,
		"infeasible", sum.Infeasible,
		"elapsed", time.Since(started),
	}
	if o.Lights {
		attrs = append(attrs, slog.Int("lights_total", sum.LightsTotal))
	}
	o.Logger.Info("all machines solved", attrs...)

	return sum, nil
}
