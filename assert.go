package bitkit

import (
	"github.com/cockroachdb/errors"
	"github.com/hupe1980/bitkit/internal/invariants"
	"github.com/hupe1980/bitkit/word"
)

// assertPosition panics in invariants builds when pos does not address a bit
// of W. Release builds never check: an out-of-range position is undefined.
func assertPosition[W word.Word](pos uint) {
	if invariants.Enabled && pos >= word.Digits[W]() {
		panic(errors.AssertionFailedf("bit position %d out of range for %d-bit word", pos, word.Digits[W]()))
	}
}

// assertRange panics in invariants builds when last precedes first. The
// check needs a constant-time distance and is skipped for cursors that are
// not random access.
func assertRange[W word.Word, C Cursor[W, C]](first, last Iterator[W, C]) {
	if !invariants.Enabled {
		return
	}
	lastRA, ok := any(last.cur).(RandomAccessCursor[W, C])
	if !ok {
		return
	}
	d := lastRA.Diff(first.cur)*int(word.Digits[W]()) + int(last.pos) - int(first.pos)
	if d < 0 {
		panic(errors.AssertionFailedf("invalid bit range: last precedes first by %d bits", -d))
	}
}
