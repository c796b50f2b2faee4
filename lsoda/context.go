package lsoda

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/lsoda-go/lsoda/linalg"
	"github.com/lsoda-go/lsoda/ode"
)

// eta is machine epsilon, used throughout for roundoff-scale comparisons
// exactly as ETA is in the reference implementation.
const eta = 2.220446049250313e-16

// Context holds everything a single integration problem needs: the
// Nordsieck history, iteration workspace, coefficient tables, and the
// scalars that drive step/order/method adaptation (spec §3). A Context is
// not safe for concurrent use; two concurrent integrations need two
// Contexts.
type Context struct {
	opt ode.Option
	n   int

	coef *coefficients
	jac  *linalg.Jacobian

	// tolerances, expanded from opt.RelTol/opt.AbsTol's two supported
	// shapes (scalar, length 1; or vector, length n) once at
	// construction/reinitialization time.
	rtolScalar, atolScalar float64
	rtolVec, atolVec       []float64

	mxordn, mxords   int
	maxord           int
	mxstep, mxhnil   int
	hmxi, hmin       float64
	logger           logr.Logger
	verbose          bool

	// 1-indexed working arrays; index 0 is unused padding so the
	// arithmetic below can be checked directly against the order-nq
	// formulas of spec §4, which are themselves 1-indexed.
	y    []float64
	yh   [][]float64
	ewt  []float64
	savf []float64
	acor []float64

	// Nordsieck / step state (spec §3).
	tn, h, hu, hold      float64
	rc, crate, rmax, el0 float64
	conit                float64
	el                   [14]float64
	nq, l, lmax          int
	ialth, ipup          int
	meth                 Method
	miter                int
	mused                Method
	kflag, jstart        int
	nslp                 int
	icount               int
	pdest, pdlast        float64
	pdnorm               float64

	// bookkeeping counters (spec §3).
	nst, nfe, nje, nqu, ncf, rejected int

	// driver-level bookkeeping.
	started    bool
	illin      int
	nhnil      int
	nslast     int
	tsw        float64
	imxer      int

	// istate=3 reinitialization flag, mirroring jstart=-1.
	pendingReinit bool
}

const (
	ccmax  = 0.3
	maxcor = 3
	msbp   = 20
	mxncf  = 10
)

// Method is an alias so lsoda callers can write lsoda.Method without
// importing ode directly for this one type.
type Method = ode.Method

const (
	methodAdams = ode.MethodAdams
	methodBDF   = ode.MethodBDF
)

// NewContext validates opt against n and allocates the working arrays,
// the moral equivalent of the legacy driver's istate=1 block b/allocation
// step. Re-running a problem with changed tolerances but the same size
// uses Reinit instead of constructing a new Context.
func NewContext(n int, opt Option) (*Context, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	mxordn, mxords, err := validateOrders(opt)
	if err != nil {
		return nil, err
	}
	if opt.Jacobian != 0 && opt.Jacobian != JacobianFullFD {
		return nil, ErrUnsupportedJacobian
	}
	if err := validateTolShape(opt.RelTol, n); err != nil {
		return nil, err
	}
	if err := validateTolShape(opt.AbsTol, n); err != nil {
		return nil, err
	}

	mxstep := opt.MaxSteps
	if mxstep == 0 {
		mxstep = 5000
	}
	mxhnil := opt.MaxHnil
	if mxhnil == 0 {
		mxhnil = 10
	}
	hmxi := 0.0
	if opt.MaxStep > 0 {
		hmxi = 1 / opt.MaxStep
	}
	if opt.MaxStep < 0 || opt.MinStep < 0 {
		return nil, ErrInvalidTolerance
	}

	lenyh := 1 + max(mxordn, mxords)

	ctx := &Context{
		opt:    opt,
		n:      n,
		coef:   newCoefficients(),
		jac:    linalg.NewJacobian(n),
		mxordn: mxordn,
		mxords: mxords,
		maxord: mxordn,
		mxstep: mxstep,
		mxhnil: mxhnil,
		hmxi:   hmxi,
		hmin:   opt.MinStep,
		logger: opt.Logger,
		verbose: opt.Verbose,

		y:    make([]float64, n+1),
		yh:   linalg.MakeRectangular(lenyh+1, n+1),
		ewt:  make([]float64, n+1),
		savf: make([]float64, n+1),
		acor: make([]float64, n+1),
	}
	ctx.setTolerances(opt.RelTol, opt.AbsTol)
	return ctx, nil
}

// Reinit re-reads tolerances/options for a continuation call that changes
// parameters without growing the problem size (the legacy istate=3 path).
// It must not be used to change n.
func (c *Context) Reinit(opt Option) error {
	mxordn, mxords, err := validateOrders(opt)
	if err != nil {
		return err
	}
	if opt.Jacobian != 0 && opt.Jacobian != JacobianFullFD {
		return ErrUnsupportedJacobian
	}
	if err := validateTolShape(opt.RelTol, c.n); err != nil {
		return err
	}
	if err := validateTolShape(opt.AbsTol, c.n); err != nil {
		return err
	}
	c.opt = opt
	c.mxordn, c.mxords = mxordn, mxords
	c.mxstep = opt.MaxSteps
	if c.mxstep == 0 {
		c.mxstep = 5000
	}
	c.mxhnil = opt.MaxHnil
	if c.mxhnil == 0 {
		c.mxhnil = 10
	}
	c.hmxi = 0
	if opt.MaxStep > 0 {
		c.hmxi = 1 / opt.MaxStep
	}
	c.hmin = opt.MinStep
	c.logger = opt.Logger
	c.verbose = opt.Verbose
	c.setTolerances(opt.RelTol, opt.AbsTol)
	c.pendingReinit = true
	return nil
}

func (c *Context) setTolerances(rtol, atol []float64) {
	if len(rtol) == 1 {
		c.rtolScalar, c.rtolVec = rtol[0], nil
	} else {
		c.rtolVec = rtol
	}
	if len(atol) == 1 {
		c.atolScalar, c.atolVec = atol[0], nil
	} else {
		c.atolVec = atol
	}
}

func validateTolShape(tol []float64, n int) error {
	if len(tol) != 1 && len(tol) != n {
		return ErrInvalidTolerance
	}
	for _, v := range tol {
		if v < 0 {
			return ErrInvalidTolerance
		}
	}
	return nil
}

func validateOrders(opt Option) (mxordn, mxords int, err error) {
	mxordn = opt.MaxOrderNonstiff
	if mxordn == 0 || mxordn > mord[0] {
		mxordn = mord[0]
	}
	mxords = opt.MaxOrderStiff
	if mxords == 0 || mxords > mord[1] {
		mxords = mord[1]
	}
	if mxordn < 1 || mxords < 1 {
		return 0, 0, ErrInvalidTolerance
	}
	return mxordn, mxords, nil
}

// ewset recomputes the error weights from the current y (spec §3: "ewt
// recomputed at every step boundary"), leaving them as tolerance scales
// (not yet inverted) so the caller can check positivity before inverting.
func (c *Context) ewset(y []float64) {
	for i := 1; i <= c.n; i++ {
		rt := c.rtolScalar
		if c.rtolVec != nil {
			rt = c.rtolVec[i-1]
		}
		at := c.atolScalar
		if c.atolVec != nil {
			at = c.atolVec[i-1]
		}
		c.ewt[i] = rt*math.Abs(y[i]) + at
	}
}

// Stats reports the running integration counters.
func (c *Context) Stats() ode.Stats {
	return ode.Stats{
		Steps:         c.nst,
		RejectedSteps: c.rejected,
		Evaluations:   c.nfe,
		JacobianEvals: c.nje,
		LastOrder:     c.nqu,
		LastStep:      c.hu,
		LastMethod:    c.mused,
		CurrentTime:   c.tn,
	}
}

func sign(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}
	return -math.Abs(a)
}
