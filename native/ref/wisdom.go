package ref

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/fftwgo/internal/hash"
	"github.com/hupe1980/fftwgo/native"
)

// Wisdom file layout:
//
//	(fftwgo-wisdom double
//	  (radix2 64 -1 measure #x1c2d3e4f)
//	)
//
// Each entry carries the CRC32C of "<algorithm> <n> <sign> <rigor>".

const wisdomHeader = "(fftwgo-wisdom"

var errMalformedWisdom = errors.New("malformed wisdom")

type wisdomKey struct {
	n    int
	sign native.Sign
}

type wisdomEntry struct {
	algo  algorithm
	rigor native.Flag
}

func rigorRank(f native.Flag) int {
	switch f {
	case native.Estimate:
		return 0
	case native.Measure:
		return 1
	case native.Patient:
		return 2
	case native.Exhaustive:
		return 3
	default:
		return -1
	}
}

func rigorName(f native.Flag) string {
	switch f {
	case native.Estimate:
		return "estimate"
	case native.Patient:
		return "patient"
	case native.Exhaustive:
		return "exhaustive"
	default:
		return "measure"
	}
}

func parseRigor(s string) (native.Flag, bool) {
	switch s {
	case "estimate":
		return native.Estimate, true
	case "measure":
		return native.Measure, true
	case "patient":
		return native.Patient, true
	case "exhaustive":
		return native.Exhaustive, true
	default:
		return 0, false
	}
}

// lookupWisdom returns wisdom planned with at least the requested rigor.
func (e *Engine) lookupWisdom(key wisdomKey, rigor native.Flag) (algorithm, bool) {
	e.wisdomMu.Lock()
	defer e.wisdomMu.Unlock()

	w, ok := e.wisdom[key]
	if !ok || rigorRank(w.rigor) < rigorRank(rigor) {
		return 0, false
	}
	return w.algo, true
}

// storeWisdom records an entry unless stronger wisdom already exists.
func (e *Engine) storeWisdom(key wisdomKey, w wisdomEntry) {
	e.wisdomMu.Lock()
	defer e.wisdomMu.Unlock()

	if cur, ok := e.wisdom[key]; ok && rigorRank(cur.rigor) > rigorRank(w.rigor) {
		return
	}
	e.wisdom[key] = w
}

// WisdomEntries returns the number of entries in the wisdom database.
func (e *Engine) WisdomEntries() int {
	e.wisdomMu.Lock()
	defer e.wisdomMu.Unlock()
	return len(e.wisdom)
}

// ForgetWisdom implements native.Engine.
func (e *Engine) ForgetWisdom() {
	e.wisdomMu.Lock()
	defer e.wisdomMu.Unlock()
	clear(e.wisdom)
}

// ExportWisdomToFilename implements native.Engine.
func (e *Engine) ExportWisdomToFilename(filename native.CString) int {
	name := filename.String()
	if name == "" {
		return 0
	}

	e.wisdomMu.Lock()
	data := e.encodeWisdom()
	e.wisdomMu.Unlock()

	if err := os.WriteFile(name, data, 0o644); err != nil { //nolint:gosec // wisdom is not secret
		return 0
	}
	return native.Success
}

// ImportWisdomFromFilename implements native.Engine.
// On failure the wisdom database is left unchanged.
func (e *Engine) ImportWisdomFromFilename(filename native.CString) int {
	name := filename.String()
	if name == "" {
		return 0
	}

	data, err := os.ReadFile(name) //nolint:gosec // path validated by the caller
	if err != nil {
		return 0
	}

	entries, err := e.decodeWisdom(data)
	if err != nil {
		return 0
	}

	e.wisdomMu.Lock()
	defer e.wisdomMu.Unlock()
	for k, w := range entries {
		e.wisdom[k] = w
	}
	return native.Success
}

func entryBody(k wisdomKey, w wisdomEntry) string {
	return fmt.Sprintf("%s %d %d %s", w.algo, k.n, int(k.sign), rigorName(w.rigor))
}

// encodeWisdom must be called with wisdomMu held.
func (e *Engine) encodeWisdom() []byte {
	keys := make([]wisdomKey, 0, len(e.wisdom))
	for k := range e.wisdom {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].n != keys[j].n {
			return keys[i].n < keys[j].n
		}
		return keys[i].sign < keys[j].sign
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s\n", wisdomHeader, e.precision)
	for _, k := range keys {
		body := entryBody(k, e.wisdom[k])
		fmt.Fprintf(&buf, "  (%s #x%08x)\n", body, hash.CRC32C([]byte(body)))
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}

func (e *Engine) decodeWisdom(data []byte) (map[wisdomKey]wisdomEntry, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	entries := make(map[wisdomKey]wisdomEntry)

	headerSeen, closed := false, false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case closed:
			return nil, fmt.Errorf("%w: trailing data", errMalformedWisdom)
		case !headerSeen:
			fields := strings.Fields(line)
			if len(fields) != 2 || fields[0] != wisdomHeader {
				return nil, fmt.Errorf("%w: bad header", errMalformedWisdom)
			}
			if p, ok := native.ParsePrecision(fields[1]); !ok || p != e.precision {
				return nil, fmt.Errorf("%w: precision %q", errMalformedWisdom, fields[1])
			}
			headerSeen = true
		case line == ")":
			closed = true
		default:
			k, w, err := parseEntry(line)
			if err != nil {
				return nil, err
			}
			entries[k] = w
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !headerSeen || !closed {
		return nil, fmt.Errorf("%w: truncated", errMalformedWisdom)
	}
	return entries, nil
}

func parseEntry(line string) (wisdomKey, wisdomEntry, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: %q", errMalformedWisdom, line)
	}
	fields := strings.Fields(line[1 : len(line)-1])
	if len(fields) != 5 || !strings.HasPrefix(fields[4], "#x") {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: %q", errMalformedWisdom, line)
	}

	algo, ok := parseAlgorithm(fields[0])
	if !ok {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: algorithm %q", errMalformedWisdom, fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 || (algo == algoRadix2 && !isPow2(n)) {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: size %q", errMalformedWisdom, fields[1])
	}
	sign, err := strconv.Atoi(fields[2])
	if err != nil || (sign != int(native.Forward) && sign != int(native.Backward)) {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: sign %q", errMalformedWisdom, fields[2])
	}
	rigor, ok := parseRigor(fields[3])
	if !ok {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: rigor %q", errMalformedWisdom, fields[3])
	}
	sum, err := strconv.ParseUint(fields[4][2:], 16, 32)
	if err != nil {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: checksum %q", errMalformedWisdom, fields[4])
	}

	k := wisdomKey{n: n, sign: native.Sign(sign)}
	w := wisdomEntry{algo: algo, rigor: rigor}
	if uint32(sum) != hash.CRC32C([]byte(entryBody(k, w))) {
		return wisdomKey{}, wisdomEntry{}, fmt.Errorf("%w: checksum mismatch", errMalformedWisdom)
	}
	return k, w, nil
}
