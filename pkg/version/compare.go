package version

import "strings"

// ComparePrecedence orders a and b ignoring build labels. It returns -1, 0
// or +1.
//
// Numeric components are compared after zero-padding the shorter side. On a
// tie, a release outranks any prerelease, and two prerelease labels are
// compared segment by segment (see compareLabels).
func ComparePrecedence(a, b Version) int {
	if c := compareComponents(a.components, b.components); c != 0 {
		return c
	}

	switch {
	case a.prerelease == "" && b.prerelease == "":
		return 0
	case a.prerelease == "":
		return 1
	case b.prerelease == "":
		return -1
	}
	return compareLabels(a.prerelease, b.prerelease)
}

// Compare is the total order over versions: precedence first, then the build
// label using the same segment rules. A missing build label sorts before any
// build label.
func Compare(a, b Version) int {
	if c := ComparePrecedence(a, b); c != 0 {
		return c
	}

	switch {
	case a.build == "" && b.build == "":
		return 0
	case a.build == "":
		return -1
	case b.build == "":
		return 1
	}
	return compareLabels(a.build, b.build)
}

// Less reports whether a orders before b in the total order.
func Less(a, b Version) bool {
	return Compare(a, b) < 0
}

// Max returns the highest of vs in the total order. The first of several
// equal maxima wins. Max of nothing is the zero Version.
func Max(vs ...Version) Version {
	var best Version
	for i, v := range vs {
		if i == 0 || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

func compareComponents(a, b []uint64) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// compareLabels compares two dot-separated labels left to right. Numeric
// segments compare numerically and always sort below alphanumeric ones;
// alphanumeric segments compare by ordinal text. When one label is a strict
// prefix of the other, the shorter one sorts first.
func compareLabels(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func compareSegment(a, b string) int {
	an, bn := isNumeric(a), isNumeric(b)
	switch {
	case an && bn:
		return compareDigits(a, b)
	case an:
		return -1
	case bn:
		return 1
	}
	return strings.Compare(a, b)
}

// compareDigits compares two decimal strings of any length numerically.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}
