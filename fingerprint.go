package rete

// constantTest is the position-wise constant/wildcard projection of a
// condition, used to key the constant-test index. It is a plain comparable
// value so it can be used directly as a map key without a custom Equal
// method or hashing step.
type constantTest struct {
	wild [3]bool
	val  [3]uint64
}

// wildcardMasks enumerates, in a fixed order, the eight position-wildcard
// combinations a WME can match: most-specific (no wildcards) first,
// least-specific (all wildcards) last, ordered by ascending wildcard count
// and, within a count, by ascending bitmask value. Bit i set means position i
// is wildcarded. The order is fixed so alpha-memory insertion is
// deterministic across runs.
var wildcardMasks = [8]uint8{
	0b000,
	0b001,
	0b010,
	0b100,
	0b011,
	0b101,
	0b110,
	0b111,
}

// wmeFingerprints returns the eight constant-test fingerprints a WME could
// match, in the order given by [wildcardMasks].
func wmeFingerprints(fields [3]uint64) [8]constantTest {
	var out [8]constantTest
	for i, mask := range wildcardMasks {
		var ct constantTest
		for pos := 0; pos < 3; pos++ {
			if mask&(1<<uint(pos)) != 0 {
				ct.wild[pos] = true
			} else {
				ct.val[pos] = fields[pos]
			}
		}
		out[i] = ct
	}
	return out
}

// conditionFingerprint derives the constant-test fingerprint of a condition:
// each [Variable] field becomes a wildcard, each [Constant] field keeps its value.
func conditionFingerprint(cond Condition) constantTest {
	var ct constantTest
	for pos, test := range cond {
		if test.isVar {
			ct.wild[pos] = true
		} else {
			ct.val[pos] = test.value
		}
	}
	return ct
}

// matches reports whether the fingerprint's constant positions equal the
// corresponding fields of the WME.
func (ct constantTest) matches(fields [3]uint64) bool {
	for pos := 0; pos < 3; pos++ {
		if !ct.wild[pos] && ct.val[pos] != fields[pos] {
			return false
		}
	}
	return true
}
