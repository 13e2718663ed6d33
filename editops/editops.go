// Package editops implements the edit-script reconstruction engine (C8
// EditopRecoverer): enumerated (Editops) and run-length (Opcodes) forms of
// a minimum edit script, a direct dynamic-programming backward walk for
// inputs that fit comfortably in memory, and a Hirschberg divide-and-conquer
// splitter for larger ones.
package editops

import (
	"encoding/binary"
	"io"

	"github.com/fulmenhq/strmetrics/textprep"
	"github.com/fulmenhq/strmetrics/xerr"
)

// Kind identifies the operation an EditOp performs.
type Kind uint8

const (
	Match Kind = iota
	Replace
	Insert
	Delete
)

func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditOp is a single edit: Kind, plus the position in the source and
// destination sequences it applies at. Match is never stored in an
// Editops list — only operations that change something are kept, so a
// list's length equals the edit distance between the two sequences.
type EditOp struct {
	Kind    Kind
	SrcPos  int
	DestPos int
}

// Editops is an ordered edit script plus the two original sequence
// lengths. Operations are sorted by (SrcPos, DestPos); applying them in
// order to the source yields the destination.
type Editops struct {
	Ops     []EditOp
	SrcLen  int
	DestLen int
}

// hirschbergCellThreshold bounds the direct O(n*m) matrix reconstruction:
// above this many cells (roughly the 1 MiB-of-bits budget spec.md gives),
// Reconstruct switches to the linear-space Hirschberg splitter instead.
var hirschbergCellThreshold = 8 * 1024 * 1024

// Reconstruct computes the minimum Levenshtein edit script (insert, delete,
// replace) transforming a into b.
func Reconstruct[E comparable](a, b []E) Editops {
	return reconstruct(a, b, true)
}

// ReconstructIndel computes the minimum indel edit script (insert, delete
// only — no replace) transforming a into b, matching the LCS engine's
// notion of distance.
func ReconstructIndel[E comparable](a, b []E) Editops {
	return reconstruct(a, b, false)
}

func reconstruct[E comparable](a, b []E, allowReplace bool) Editops {
	prefixLen, _, ta, tb := textprep.RemoveCommonAffix(a, b)

	var ops []EditOp
	if len(ta)*len(tb) <= hirschbergCellThreshold {
		ops = reconstructDirect(ta, tb, allowReplace, prefixLen, prefixLen)
	} else {
		ops = hirschberg(ta, tb, allowReplace, prefixLen, prefixLen, 0)
	}

	return Editops{Ops: ops, SrcLen: len(a), DestLen: len(b)}
}

// reconstructDirect builds the full (len(a)+1)x(len(b)+1) cost matrix and
// walks it backward from the bottom-right corner, selecting the operation
// that produced the current cell's cost. srcOffset/destOffset are added to
// every emitted position, re-introducing a stripped common prefix.
func reconstructDirect[E comparable](a, b []E, allowReplace bool, srcOffset, destOffset int) []EditOp {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			best := dp[i-1][j] + 1
			if v := dp[i][j-1] + 1; v < best {
				best = v
			}
			if allowReplace {
				if v := dp[i-1][j-1] + 1; v < best {
					best = v
				}
			}
			dp[i][j] = best
		}
	}

	var ops []EditOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && dp[i][j] == dp[i-1][j-1]:
			i--
			j--
		case allowReplace && i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1:
			ops = append(ops, EditOp{Kind: Replace, SrcPos: srcOffset + i - 1, DestPos: destOffset + j - 1})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			ops = append(ops, EditOp{Kind: Delete, SrcPos: srcOffset + i - 1, DestPos: destOffset + j})
			i--
		case j > 0 && dp[i][j] == dp[i][j-1]+1:
			ops = append(ops, EditOp{Kind: Insert, SrcPos: srcOffset + i, DestPos: destOffset + j - 1})
			j--
		default:
			i, j = 0, 0
		}
	}
	reverseOps(ops)
	return ops
}

// hirschberg is the linear-space divide-and-conquer splitter: cut b at its
// midpoint, score both halves with a single-row forward/backward pass, find
// the column in a minimising their sum, and recurse on each half. Depth is
// O(log(len(b))); implemented recursively rather than with an explicit work
// stack since Go's growable goroutine stacks make that safe at this depth
// (see DESIGN.md).
func hirschberg[E comparable](a, b []E, allowReplace bool, srcOffset, destOffset, depth int) []EditOp {
	switch {
	case len(a) == 0:
		ops := make([]EditOp, len(b))
		for idx := range b {
			ops[idx] = EditOp{Kind: Insert, SrcPos: srcOffset, DestPos: destOffset + idx}
		}
		return ops
	case len(b) == 0:
		ops := make([]EditOp, len(a))
		for idx := range a {
			ops[idx] = EditOp{Kind: Delete, SrcPos: srcOffset + idx, DestPos: destOffset}
		}
		return ops
	case len(a) == 1 || len(b) == 1 || len(a)*len(b) <= hirschbergCellThreshold:
		return reconstructDirect(a, b, allowReplace, srcOffset, destOffset)
	}

	mid := len(b) / 2
	bLeft, bRight := b[:mid], b[mid:]

	forward := costRow(a, bLeft, allowReplace)
	backward := costRow(reverseSlice(a), reverseSlice(bRight), allowReplace)

	bestK, bestCost := 0, forward[0]+backward[len(a)]
	for k := 1; k <= len(a); k++ {
		if cost := forward[k] + backward[len(a)-k]; cost < bestCost {
			bestCost, bestK = cost, k
		}
	}

	debugLog.Debugw("hirschberg split",
		"depth", depth,
		"srcOffset", srcOffset,
		"destOffset", destOffset,
		"splitColumn", bestK,
		"cost", bestCost,
	)
	emitSplitCounter(depth)

	left := hirschberg(a[:bestK], bLeft, allowReplace, srcOffset, destOffset, depth+1)
	right := hirschberg(a[bestK:], bRight, allowReplace, srcOffset+bestK, destOffset+mid, depth+1)
	return append(left, right...)
}

// costRow computes, in O(len(a)) space, the array `dist(a[:i], b)` for
// every i in [0, len(a)], after consuming all of b. This is the single-row
// pass Hirschberg's algorithm needs in both the forward and (on reversed
// inputs) backward direction.
func costRow[E comparable](a, b []E, allowReplace bool) []int {
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		prev := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			temp := row[i]
			if a[i-1] == b[j-1] {
				row[i] = prev
			} else {
				best := row[i-1] + 1
				if v := temp + 1; v < best {
					best = v
				}
				if allowReplace {
					if v := prev + 1; v < best {
						best = v
					}
				}
				row[i] = best
			}
			prev = temp
		}
	}
	return row
}

func reverseSlice[E any](s []E) []E {
	out := make([]E, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}

func reverseOps(ops []EditOp) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}

// Apply transforms a into the destination sequence by replaying ops,
// copying unchanged runs from a and pulling inserted/replaced elements from
// b at the position ops recorded them.
func Apply[E any](ops Editops, a, b []E) []E {
	result := make([]E, 0, ops.DestLen)
	i := 0
	for _, op := range ops.Ops {
		for i < op.SrcPos {
			result = append(result, a[i])
			i++
		}
		switch op.Kind {
		case Delete:
			i++
		case Insert:
			result = append(result, b[op.DestPos])
		case Replace:
			result = append(result, b[op.DestPos])
			i++
		}
	}
	for i < len(a) {
		result = append(result, a[i])
		i++
	}
	return result
}

// Slice returns the operations at indices start, start+step, ... below stop
// of ops.Ops (all of ops.Ops[start:stop] for step == 1). Bounds outside
// [0, len(ops.Ops)] or stop < start, and a zero or negative step, are errors.
func Slice(ops Editops, start, stop, step int) (Editops, error) {
	if step <= 0 {
		return Editops{}, xerr.Newf(xerr.CodeInvalidSlice, "step must be positive, got %d", step)
	}
	if start < 0 || stop < start || stop > len(ops.Ops) {
		return Editops{}, xerr.Newf(xerr.CodeInvalidSlice, "invalid slice bounds [%d:%d) for %d ops", start, stop, len(ops.Ops))
	}
	var out []EditOp
	for i := start; i < stop; i += step {
		out = append(out, ops.Ops[i])
	}
	return Editops{Ops: out, SrcLen: ops.SrcLen, DestLen: ops.DestLen}, nil
}

// Invert swaps source and destination: Insert becomes Delete and vice
// versa, Replace swaps its two positions, and SrcLen/DestLen are swapped.
// The result transforms the original destination back into the original
// source.
func Invert(ops Editops) Editops {
	out := make([]EditOp, len(ops.Ops))
	for i, op := range ops.Ops {
		switch op.Kind {
		case Insert:
			out[i] = EditOp{Kind: Delete, SrcPos: op.DestPos, DestPos: op.SrcPos}
		case Delete:
			out[i] = EditOp{Kind: Insert, SrcPos: op.DestPos, DestPos: op.SrcPos}
		default:
			out[i] = EditOp{Kind: op.Kind, SrcPos: op.DestPos, DestPos: op.SrcPos}
		}
	}
	return Editops{Ops: out, SrcLen: ops.DestLen, DestLen: ops.SrcLen}
}

// RemoveSubsequence returns ops with every operation in subset removed.
// subset must be literally contained in ops (same EditOp values, in the
// same relative order) — this is a documented precondition, not something
// RemoveSubsequence rewrites a script to satisfy; violating it is reported
// as xerr.CodeInvalidEditops rather than producing a silently wrong result.
func RemoveSubsequence(ops, subset Editops) (Editops, error) {
	if len(subset.Ops) == 0 {
		return ops, nil
	}
	out := make([]EditOp, 0, len(ops.Ops)-len(subset.Ops))
	si := 0
	for _, op := range ops.Ops {
		if si < len(subset.Ops) && op == subset.Ops[si] {
			si++
			continue
		}
		out = append(out, op)
	}
	if si != len(subset.Ops) {
		return Editops{}, xerr.Newf(xerr.CodeInvalidEditops,
			"subset is not a subsequence of the receiver's operations (matched %d of %d)", si, len(subset.Ops))
	}
	return Editops{Ops: out, SrcLen: ops.SrcLen, DestLen: ops.DestLen}, nil
}

// Opcode is the run-length form of one or more consecutive EditOps sharing
// a Kind: a span [SrcBegin,SrcEnd) of the source maps to [DestBegin,DestEnd)
// of the destination.
type Opcode struct {
	Kind                Kind
	SrcBegin, SrcEnd    int
	DestBegin, DestEnd  int
}

// Opcodes is the run-length equivalent of Editops, covering the full spans
// of both sequences (including Match runs, unlike Editops).
type Opcodes struct {
	Codes   []Opcode
	SrcLen  int
	DestLen int
}

// ToOpcodes converts an edit script to its run-length form, inserting
// Match spans to cover the untouched regions between (and around) edits.
func ToOpcodes(ops Editops) Opcodes {
	var codes []Opcode
	srcPos, destPos := 0, 0

	flushMatch := func(toSrc, toDest int) {
		if toSrc > srcPos || toDest > destPos {
			codes = append(codes, Opcode{Kind: Match, SrcBegin: srcPos, SrcEnd: toSrc, DestBegin: destPos, DestEnd: toDest})
		}
	}

	i := 0
	for i < len(ops.Ops) {
		op := ops.Ops[i]
		flushMatch(op.SrcPos, op.DestPos)

		kind := op.Kind
		srcBegin, destBegin := op.SrcPos, op.DestPos
		srcEnd, destEnd := srcBegin, destBegin
		switch kind {
		case Delete:
			srcEnd++
		case Insert:
			destEnd++
		case Replace:
			srcEnd++
			destEnd++
		}
		j := i + 1
		for j < len(ops.Ops) && ops.Ops[j].Kind == kind &&
			ops.Ops[j].SrcPos == srcEnd && ops.Ops[j].DestPos == destEnd {
			switch kind {
			case Delete:
				srcEnd++
			case Insert:
				destEnd++
			case Replace:
				srcEnd++
				destEnd++
			}
			j++
		}
		codes = append(codes, Opcode{Kind: kind, SrcBegin: srcBegin, SrcEnd: srcEnd, DestBegin: destBegin, DestEnd: destEnd})
		srcPos, destPos = srcEnd, destEnd
		i = j
	}
	flushMatch(ops.SrcLen, ops.DestLen)

	return Opcodes{Codes: codes, SrcLen: ops.SrcLen, DestLen: ops.DestLen}
}

// ToEditops expands a run-length script back into individual operations,
// dropping Match spans. Opcodes(Editops(e)) == e and
// Editops(Opcodes(o)) == o on canonical inputs (spec.md §8 property 7).
func ToEditops(codes Opcodes) Editops {
	var ops []EditOp
	for _, oc := range codes.Codes {
		switch oc.Kind {
		case Match:
			continue
		case Delete:
			for i := oc.SrcBegin; i < oc.SrcEnd; i++ {
				ops = append(ops, EditOp{Kind: Delete, SrcPos: i, DestPos: oc.DestBegin})
			}
		case Insert:
			for j := oc.DestBegin; j < oc.DestEnd; j++ {
				ops = append(ops, EditOp{Kind: Insert, SrcPos: oc.SrcBegin, DestPos: j})
			}
		case Replace:
			n := oc.SrcEnd - oc.SrcBegin
			for k := 0; k < n; k++ {
				ops = append(ops, EditOp{Kind: Replace, SrcPos: oc.SrcBegin + k, DestPos: oc.DestBegin + k})
			}
		}
	}
	return Editops{Ops: ops, SrcLen: codes.SrcLen, DestLen: codes.DestLen}
}

// WriteEditops serialises ops as a length-prefixed array of
// (kind:u8, src_pos:u64, dest_pos:u64) followed by src_len:u64, dest_len:u64,
// matching the wire format spec.md §6 describes.
func WriteEditops(w io.Writer, ops Editops) error {
	if err := binary.Write(w, binary.BigEndian, uint64(len(ops.Ops))); err != nil {
		return err
	}
	for _, op := range ops.Ops {
		if err := binary.Write(w, binary.BigEndian, uint8(op.Kind)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint64(op.SrcPos)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint64(op.DestPos)); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.BigEndian, uint64(ops.SrcLen)); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, uint64(ops.DestLen))
}

// ReadEditops parses the format WriteEditops produces.
func ReadEditops(r io.Reader) (Editops, error) {
	var n uint64
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return Editops{}, err
	}
	ops := make([]EditOp, n)
	for i := range ops {
		var kind uint8
		var srcPos, destPos uint64
		if err := binary.Read(r, binary.BigEndian, &kind); err != nil {
			return Editops{}, err
		}
		if err := binary.Read(r, binary.BigEndian, &srcPos); err != nil {
			return Editops{}, err
		}
		if err := binary.Read(r, binary.BigEndian, &destPos); err != nil {
			return Editops{}, err
		}
		ops[i] = EditOp{Kind: Kind(kind), SrcPos: int(srcPos), DestPos: int(destPos)}
	}
	var srcLen, destLen uint64
	if err := binary.Read(r, binary.BigEndian, &srcLen); err != nil {
		return Editops{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &destLen); err != nil {
		return Editops{}, err
	}
	return Editops{Ops: ops, SrcLen: int(srcLen), DestLen: int(destLen)}, nil
}
