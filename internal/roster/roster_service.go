package roster

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-roster/internal/employee"
	rostererrors "go-roster/internal/roster/errors"
	"go-roster/internal/shared/apperror"
	"go-roster/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Operation is a payroll mutation applied to the whole roster.
type Operation string

const (
	OpProgrammerBonus Operation = "programmer_bonus"
	OpMenBonus        Operation = "men_bonus"
	OpWomenBonus      Operation = "women_bonus"
	OpIndexation      Operation = "indexation"
)

//go:generate mockgen -source=roster_service.go -destination=mock/roster_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, path string) (int, error)
	Summaries(ctx context.Context) []string
	Records(ctx context.Context) []employee.Record
	Apply(ctx context.Context, op Operation) (int, error)
	VacationEligible(ctx context.Context) []string
	WageFund(ctx context.Context) int64
	Export(ctx context.Context, format Format, name string) (string, error)
	StartCycle(ctx context.Context) string
}

// cycle remembers which operations each employee already received, so a
// repeated menu choice within one payroll run does not pay twice.
type cycle struct {
	id      uuid.UUID
	applied map[*employee.Employee]map[Operation]bool
}

func newCycle() *cycle {
	return &cycle{
		id:      uuid.New(),
		applied: make(map[*employee.Employee]map[Operation]bool),
	}
}

func (c *cycle) done(e *employee.Employee, op Operation) bool {
	return c.applied[e][op]
}

func (c *cycle) mark(e *employee.Employee, op Operation) {
	if c.applied[e] == nil {
		c.applied[e] = make(map[Operation]bool)
	}
	c.applied[e][op] = true
}

type service struct {
	repo       Repository
	resultsDir string
	now        func() time.Time
	cycle      *cycle
	logger     *zap.Logger
}

func NewService(repo Repository, resultsDir string, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, resultsDir, time.Now, logger...)
}

func NewServiceWithClock(
	repo Repository,
	resultsDir string,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	return &service{
		repo:       repo,
		resultsDir: resultsDir,
		now:        now,
		cycle:      newCycle(),
		logger:     l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger).With(
		zap.String("session_id", contextutil.GetSessionID(ctx)),
	)
}

func (s *service) Load(ctx context.Context, path string) (int, error) {
	log := s.log(ctx)
	log.Debug("load roster requested", zap.String("path", path))

	employees, err := ImportFile(path, WithClock(s.now))
	if err != nil {
		log.Error("load roster failed", zap.String("path", path), zap.Error(err))
		return 0, err
	}

	s.repo.Replace(ctx, employees)
	s.cycle = newCycle()

	log.Info("load roster success",
		zap.String("path", path),
		zap.Int("employees", len(employees)),
		zap.String("cycle_id", s.cycle.id.String()),
	)
	return len(employees), nil
}

func (s *service) Summaries(ctx context.Context) []string {
	employees := s.repo.FindAll(ctx)
	res := make([]string, len(employees))
	for i, e := range employees {
		res[i] = e.PrintEverything()
	}
	return res
}

func (s *service) Records(ctx context.Context) []employee.Record {
	return employee.Records(s.repo.FindAll(ctx))
}

// Apply runs op over the roster and returns how many employees it changed.
// Employees that already received op in the current cycle are skipped.
func (s *service) Apply(ctx context.Context, op Operation) (int, error) {
	log := s.log(ctx).With(
		zap.String("operation", string(op)),
		zap.String("cycle_id", s.cycle.id.String()),
	)
	log.Debug("payroll operation requested")

	apply, err := s.operation(op)
	if err != nil {
		log.Warn("payroll operation rejected", zap.Error(err))
		return 0, err
	}

	now := s.now()
	changed, skipped := 0, 0
	for _, e := range s.repo.FindAll(ctx) {
		if s.cycle.done(e, op) {
			skipped++
			continue
		}
		if apply(e, now) {
			s.cycle.mark(e, op)
			changed++
		}
	}

	if skipped > 0 {
		log.Warn("payroll operation already applied in this cycle",
			zap.Int("skipped", skipped),
		)
	}
	log.Info("payroll operation success", zap.Int("changed", changed))
	return changed, nil
}

func (s *service) operation(op Operation) (func(e *employee.Employee, now time.Time) bool, error) {
	switch op {
	case OpProgrammerBonus:
		return func(e *employee.Employee, _ time.Time) bool { return e.PremProg() }, nil
	case OpMenBonus:
		return func(e *employee.Employee, _ time.Time) bool { return e.PremMan() }, nil
	case OpWomenBonus:
		return func(e *employee.Employee, _ time.Time) bool { return e.PremWom() }, nil
	case OpIndexation:
		return func(e *employee.Employee, now time.Time) bool {
			e.Index(now)
			return true
		}, nil
	default:
		return nil, rostererrors.ErrUnknownOperation
	}
}

func (s *service) VacationEligible(ctx context.Context) []string {
	now := s.now()
	var names []string
	for _, e := range s.repo.FindAll(ctx) {
		if e.Rest(now) {
			names = append(names, e.FullName())
		}
	}
	return names
}

func (s *service) WageFund(ctx context.Context) int64 {
	return employee.WageFund(s.repo.FindAll(ctx))
}

// Export writes <resultsDir>/<name>.<format> and returns the path written.
func (s *service) Export(ctx context.Context, format Format, name string) (string, error) {
	log := s.log(ctx)
	log.Debug("export requested", zap.String("format", string(format)), zap.String("name", name))

	exp, err := ExporterFor(string(format))
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if !validFileName(name) {
		return "", rostererrors.ErrInvalidFileName
	}

	employees := s.repo.FindAll(ctx)
	if len(employees) == 0 {
		return "", rostererrors.ErrEmptyRoster
	}

	if err := os.MkdirAll(s.resultsDir, 0o755); err != nil {
		log.Error("export create results dir failed", zap.String("dir", s.resultsDir), zap.Error(err))
		return "", apperror.IO(err, "cannot create results directory")
	}

	path := filepath.Join(s.resultsDir, name+"."+string(exp.Format()))
	if err := WriteFile(path, exp, employees); err != nil {
		log.Error("export failed", zap.String("path", path), zap.Error(err))
		return "", err
	}

	log.Info("export success", zap.String("path", path), zap.Int("employees", len(employees)))
	return path, nil
}

func validFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// StartCycle opens a new payroll cycle; every operation may run once more.
func (s *service) StartCycle(ctx context.Context) string {
	previous := s.cycle.id
	s.cycle = newCycle()
	s.log(ctx).Info("payroll cycle started",
		zap.String("cycle_id", s.cycle.id.String()),
		zap.String("previous_cycle_id", previous.String()),
	)
	return s.cycle.id.String()
}
