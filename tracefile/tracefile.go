// Package tracefile reads and writes page reference traces.
//
// A trace is a list of integers separated by whitespace or commas. A
// '#' starts a comment that runs to the end of the line. Files ending in
// .sz or .snappy are snappy framed streams and files ending in .lz4 are
// LZ4 frames; anything else is plain text.
package tracefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	"pagesim"
)

// Codec identifies the on-disk compression of a trace file.
type Codec int

const (
	CodecPlain Codec = iota
	CodecSnappy
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecPlain:
		return "plain"
	case CodecSnappy:
		return "snappy"
	case CodecLZ4:
		return "lz4"
	}
	return fmt.Sprintf("Codec(%d)", int(c))
}

// CodecFor picks the codec from the file extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return CodecSnappy
	case ".lz4":
		return CodecLZ4
	}
	return CodecPlain
}

// Parse reads a trace from a string.
func Parse(s string) (pagesim.Trace, error) {
	return Read(strings.NewReader(s))
}

// Read reads a plain text trace. Lines may be of any length.
func Read(r io.Reader) (pagesim.Trace, error) {
	var pages []pagesim.Page
	br := bufio.NewReader(r)
	line := 0
	for {
		text, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return pagesim.Trace{}, fmt.Errorf("reading trace: %w", rerr)
		}
		if text == "" && rerr == io.EOF {
			break
		}
		line++
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return pagesim.Trace{}, fmt.Errorf("line %d: invalid page %q", line, f)
			}
			pages = append(pages, pagesim.Page(v))
		}
		if rerr == io.EOF {
			break
		}
	}
	return pagesim.NewTrace(pages...), nil
}

// Write writes t as plain text, sixteen pages per line.
func Write(w io.Writer, t pagesim.Trace) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < t.Len(); i++ {
		switch {
		case i == 0:
		case i%16 == 0:
			bw.WriteByte('\n')
		default:
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(int(t.At(i))))
	}
	if t.Len() > 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadFile loads a trace, decompressing according to the extension.
func ReadFile(path string) (pagesim.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return pagesim.Trace{}, err
	}
	defer f.Close()

	var r io.Reader = f
	switch CodecFor(path) {
	case CodecSnappy:
		r = snappy.NewReader(f)
	case CodecLZ4:
		r = lz4.NewReader(f)
	}
	t, err := Read(r)
	if err != nil {
		return pagesim.Trace{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteFile stores a trace, compressing according to the extension.
func WriteFile(path string, t pagesim.Trace) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.WriteCloser
	switch CodecFor(path) {
	case CodecSnappy:
		w = snappy.NewBufferedWriter(f)
	case CodecLZ4:
		w = lz4.NewWriter(f)
	default:
		return Write(f, t)
	}
	if err := Write(w, t); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
