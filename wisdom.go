package fftwgo

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/fftwgo/native"
)

// ImportWisdom merges the wisdom file at path into the domain's wisdom
// database. Plans created afterwards may reuse it.
//
// Error conditions:
//   - *ErrPathEncoding if path is not valid UTF-8
//   - *ErrPathConversion if path holds a NUL byte
//   - *ErrWisdomImport if the engine rejects the file (missing, unreadable,
//     other precision, corrupt)
func (d *Domain) ImportWisdom(path string) error {
	return d.wisdomIO(WisdomImport, path, d.engine.ImportWisdomFromFilename)
}

// ExportWisdom writes the domain's wisdom database to path, replacing any
// existing file. Error conditions mirror ImportWisdom, with *ErrWisdomExport
// for an engine failure.
func (d *Domain) ExportWisdom(path string) error {
	return d.wisdomIO(WisdomExport, path, d.engine.ExportWisdomToFilename)
}

// wisdomIO runs the shared validation chain. The engine synchronizes its
// wisdom database itself, so no guard is taken.
func (d *Domain) wisdomIO(op WisdomOp, path string, call func(native.CString) int) error {
	start := time.Now()
	err := d.doWisdomIO(op, path, call)
	d.metrics.RecordWisdom(op, time.Since(start), err)
	d.logger.LogWisdom(context.Background(), op, path, err)
	return err
}

func (d *Domain) doWisdomIO(op WisdomOp, path string, call func(native.CString) int) error {
	if !utf8.ValidString(path) {
		return &ErrPathEncoding{Path: path}
	}

	cpath, err := native.NewCString(path)
	if err != nil {
		return &ErrPathConversion{Path: path, cause: err}
	}

	if call(cpath) == native.Success {
		return nil
	}
	if op == WisdomExport {
		return &ErrWisdomExport{Path: path}
	}
	return &ErrWisdomImport{Path: path}
}
