package store

import (
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/pkg/errors"
)

// ListTheories returns the theories matching a CEL filter expression, in
// catalogue order. The expression sees the variables `id`, `title`,
// `category`, `difficulty` (strings) and `tags` (list of string), e.g.
// `category == "cognitive-biases" && "pricing" in tags`. An empty filter
// matches everything. A filter that does not compile to a boolean is an
// invalid-argument error.
func (c *Catalogue) ListTheories(filter string) ([]*Theory, error) {
	theories := c.Theories()
	if strings.TrimSpace(filter) == "" {
		return theories, nil
	}

	program, err := compileTheoryFilter(filter)
	if err != nil {
		return nil, err
	}

	matched := []*Theory{}
	for _, theory := range theories {
		out, _, err := program.Eval(map[string]any{
			"id":         theory.ID,
			"title":      theory.Title,
			"category":   string(theory.Category),
			"difficulty": theory.Metadata.Difficulty,
			"tags":       theory.Metadata.Tags,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "evaluate filter against theory %q", theory.ID)
		}
		if ok, _ := out.Value().(bool); ok {
			matched = append(matched, theory)
		}
	}
	return matched, nil
}

func compileTheoryFilter(filter string) (cel.Program, error) {
	env, err := cel.NewEnv(
		cel.Variable("id", cel.StringType),
		cel.Variable("title", cel.StringType),
		cel.Variable("category", cel.StringType),
		cel.Variable("difficulty", cel.StringType),
		cel.Variable("tags", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create filter environment")
	}

	ast, issues := env.Compile(filter)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(issues.Err(), "invalid filter %q", filter)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Errorf("filter %q must evaluate to a boolean, got %s", filter, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "build filter program for %q", filter)
	}
	return program, nil
}
