package version

import (
	"strings"

	"github.com/agentstation/depmerge/pkg/constants"
)

// CompareWildcard compares two raw version strings that may end in a "*"
// component ("1.2.*" means any value from the third component on). The
// second return value is false when the order cannot be decided, in which
// case the caller must not guess.
//
// Components are compared left to right with the shorter side padded with
// "0":
//   - equal components continue;
//   - a "*" decides only when it is the last component of its side and the
//     other side holds "0" or "*" at that position; the "*" side wins;
//   - two numbers decide by value;
//   - anything else (labels, a "*" against a non-zero number) is
//     unresolvable.
//
// Strings that compare equal at every position return (0, true).
func CompareWildcard(a, b string) (int, bool) {
	as := strings.Split(strings.TrimSpace(a), ".")
	bs := strings.Split(strings.TrimSpace(b), ".")

	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		x := componentAt(as, i)
		y := componentAt(bs, i)
		if x == y {
			continue
		}

		switch {
		case x == constants.WildcardComponent:
			if i == len(as)-1 && isZeroOrWildcard(y) {
				return 1, true
			}
			return 0, false
		case y == constants.WildcardComponent:
			if i == len(bs)-1 && isZeroOrWildcard(x) {
				return -1, true
			}
			return 0, false
		case isNumeric(x) && isNumeric(y):
			if c := compareDigits(x, y); c != 0 {
				return c, true
			}
			// "01" and "1" are the same number
			continue
		default:
			return 0, false
		}
	}

	return 0, true
}

func componentAt(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}

func isZeroOrWildcard(s string) bool {
	if s == constants.WildcardComponent {
		return true
	}
	return isNumeric(s) && strings.TrimLeft(s, "0") == ""
}
