package lsoda

import "github.com/lsoda-go/lsoda/ode"

// Solve integrates f from t0 starting at y0, sampling the trajectory at
// the times in times (which must be non-decreasing and start at or after
// t0), and returns one row per sample: row[0] is the time,
// row[1:] the state. It is the high-level convenience wrapper promised by
// spec §6 for callers that just want a table of results rather than
// managing a Context themselves.
func Solve(f ode.Function, t0 float64, y0 []float64, times []float64, opt Option, payload any) ([][]float64, error) {
	n := len(y0)
	ctx, err := NewContext(n, opt)
	if err != nil {
		return nil, err
	}

	y := make([]float64, n)
	copy(y, y0)
	t := t0

	rows := make([][]float64, 0, len(times))
	for _, tout := range times {
		if tout == t0 && len(rows) == 0 {
			row := make([]float64, n+1)
			row[0] = t0
			copy(row[1:], y0)
			rows = append(rows, row)
			continue
		}
		status, err := ctx.Step(f, y, &t, tout, ITaskNormal, payload)
		if err != nil {
			return rows, err
		}
		if status != StatusSuccess {
			return rows, statusError(status)
		}
		row := make([]float64, n+1)
		row[0] = t
		copy(row[1:], y)
		rows = append(rows, row)
	}
	return rows, nil
}

// statusError turns a non-success Status into an error for callers of the
// table-returning Solve helper, which has no istate output of its own to
// hand back partial-failure information through.
func statusError(s Status) error {
	return solveError{s}
}

type solveError struct{ status Status }

func (e solveError) Error() string { return "lsoda: " + e.status.String() }

// Status unwraps the failing Status so a caller using errors.As can branch
// on it without string matching.
func (e solveError) Status() Status { return e.status }
