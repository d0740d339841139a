package confweave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/parse"
)

// ParseOverrides turns command-line style arguments into an update
// mapping suitable for Merge. Arguments take the form
// "--a.b.c=value"; a flag without a value consumes the next argument,
// or binds true when none follows. Dashes in key names become
// underscores. Values use the literal grammar, falling back to plain
// strings so shell words never need quoting.
func ParseOverrides(args []string) (*ir.Node, error) {
	res := ir.FromKeyVals()
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return nil, fmt.Errorf("expected --key=value, got %q", arg)
		}
		key, raw, eq := strings.Cut(arg[2:], "=")
		if key == "" {
			return nil, fmt.Errorf("empty key in %q", arg)
		}
		key = strings.ReplaceAll(key, "-", "_")
		i++
		if !eq {
			if i < len(args) && !strings.HasPrefix(args[i], "--") {
				raw = args[i]
				i++
			} else {
				res.Set(key, ir.FromBool(true))
				continue
			}
		}
		v, err := parse.Literal(raw)
		if err != nil {
			if !errors.Is(err, parse.ErrValue) {
				return nil, fmt.Errorf("--%s: %w", key, err)
			}
			v = ir.FromString(raw)
		}
		res.Set(key, v)
	}
	return res, nil
}
