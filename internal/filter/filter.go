package filter

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Inha-Lost-Found-Center/ILFC-Front-Admin-Web/internal/core"
)

// Filter is a compiled boolean expression evaluated against records of type T.
type Filter[T any] struct {
	source  string
	program *vm.Program
	env     func(T) any
}

func compile[T any](source string, sample any, env func(T) any) (*Filter[T], error) {
	program, err := expr.Compile(source, expr.Env(sample), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter '%s': %w", source, err)
	}
	return &Filter[T]{source: source, program: program, env: env}, nil
}

func (f *Filter[T]) String() string {
	return f.source
}

// Match evaluates the filter against one record.
func (f *Filter[T]) Match(record T) (bool, error) {
	out, err := expr.Run(f.program, f.env(record))
	if err != nil {
		return false, fmt.Errorf("evaluating filter '%s': %w", f.source, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter '%s' did not evaluate to a bool", f.source)
	}
	return b, nil
}

// Apply keeps the records the filter matches. A nil filter keeps everything.
func (f *Filter[T]) Apply(records []T) ([]T, error) {
	if f == nil {
		return records, nil
	}
	res := make([]T, 0, len(records))
	for _, r := range records {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, r)
		}
	}
	return res, nil
}

// ItemEnv is what an item filter sees, e.g.
//
//	status == "보관" && "wallet" in tags && age > duration("72h")
type ItemEnv struct {
	ID           int       `expr:"id"`
	Location     string    `expr:"location"`
	Status       string    `expr:"status"`
	Description  string    `expr:"description"`
	Tags         []string  `expr:"tags"`
	RegisteredAt time.Time `expr:"registered_at"`

	// Age is the time since registration.
	Age time.Duration `expr:"age"`
}

func CompileItems(source string) (*Filter[core.Item], error) {
	return compile(source, ItemEnv{}, func(i core.Item) any {
		return ItemEnv{
			ID:           i.ID,
			Location:     i.Location,
			Status:       string(i.Status),
			Description:  i.Description,
			Tags:         i.TagNames(),
			RegisteredAt: i.RegisteredAt.Time,
			Age:          time.Since(i.RegisteredAt.Time),
		}
	})
}

type PickupEnv struct {
	ID              int       `expr:"id"`
	Code            string    `expr:"code"`
	Used            bool      `expr:"used"`
	Cancelled       bool      `expr:"cancelled"`
	State           string    `expr:"state"`
	UserEmail       string    `expr:"user_email"`
	ItemID          int       `expr:"item_id"`
	ItemDescription string    `expr:"item_description"`
	GeneratedAt     time.Time `expr:"generated_at"`
	ExpiresAt       time.Time `expr:"expires_at"`
}

func CompilePickups(source string) (*Filter[core.PickupLog], error) {
	return compile(source, PickupEnv{}, func(p core.PickupLog) any {
		return PickupEnv{
			ID:              p.ID,
			Code:            p.Code,
			Used:            p.IsUsed,
			Cancelled:       p.CancelledAt != nil,
			State:           p.State(time.Now()),
			UserEmail:       p.UserEmail,
			ItemID:          p.ItemID,
			ItemDescription: p.ItemDescription,
			GeneratedAt:     p.GeneratedAt.Time,
			ExpiresAt:       p.ExpiresAt.Time,
		}
	})
}
