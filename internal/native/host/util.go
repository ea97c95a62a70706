package host

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/23skdu/arrayfire-go/internal/codec"
	"github.com/23skdu/arrayfire-go/internal/native"
)

// format renders a the way af_array_to_string does: a name line, the
// dimensions, then one line per row of each 2-D slice. transpose prints
// matrices in row order; without it every line holds one column.
func format(name string, a *array, precision int, transpose bool) string {
	if precision < 0 {
		precision = 4
	}
	var sb strings.Builder
	if name != "" {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "[%d %d %d %d]\n", a.dims[0], a.dims[1], a.dims[2], a.dims[3])
	rows, cols := a.dims[0], a.dims[1]
	if !transpose {
		rows, cols = cols, rows
	}
	elem := func(i int64) string {
		var s string
		if isFloat(a.dtype) {
			s = strconv.FormatFloat(valRe(a, i), 'f', precision, 64)
		} else {
			s = strconv.FormatFloat(valRe(a, i), 'f', 0, 64)
		}
		if a.buf.im != nil {
			s = "(" + s + "," + strconv.FormatFloat(valIm(a, i), 'f', precision, 64) + ")"
		}
		return s
	}
	for b3 := int64(0); b3 < a.dims[3]; b3++ {
		for b2 := int64(0); b2 < a.dims[2]; b2++ {
			if b2+b3 > 0 {
				sb.WriteByte('\n')
			}
			for r := int64(0); r < rows; r++ {
				for c := int64(0); c < cols; c++ {
					i, j := r, c
					if !transpose {
						i, j = c, r
					}
					fmt.Fprintf(&sb, "%*s ", precision+7, elem(linear(a.dims, [4]int64{i, j, b2, b3})))
				}
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

func (l *Lib) ArrayToString(name string, h native.Handle, precision int, transpose bool) (string, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return "", c
	}
	return format(name, a, precision, transpose), native.Success
}

func (l *Lib) PrintArray(h native.Handle, name string, precision int) native.Code {
	s, c := l.ArrayToString(name, h, precision, true)
	if c != native.Success {
		return c
	}
	if _, err := fmt.Fprint(os.Stdout, s); err != nil {
		return native.ErrRuntime
	}
	return native.Success
}

// fileKey identifies one version of a snapshot file so cached decodes go
// stale when the file changes on disk.
func fileKey(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%d:%d", path, fi.ModTime().UnixNano(), fi.Size()), nil
}

// snapshots loads path through the decode cache. Callers hold l.mu.
func (l *Lib) snapshots(path string) ([]codec.Snapshot, native.Code) {
	key, err := fileKey(path)
	if err != nil {
		return nil, l.fail(native.ErrArg, "cannot open %s: %v", path, err)
	}
	if snaps, ok := l.files.Get(key); ok {
		return snaps, native.Success
	}
	snaps, err := codec.Load(path)
	if err != nil {
		if errors.Is(err, codec.ErrCorrupt) {
			return nil, l.fail(native.ErrRuntime, "%v", err)
		}
		return nil, l.fail(native.ErrArg, "cannot read %s: %v", path, err)
	}
	l.files.Put(key, snaps)
	return snaps, native.Success
}

// restore turns a snapshot back into a registered array. Callers hold l.mu.
func (l *Lib) restore(s codec.Snapshot) (native.Handle, native.Code) {
	t := native.DType(s.Type)
	if !valid(t) {
		return 0, l.fail(native.ErrRuntime, "snapshot %q has invalid type %d", s.Key, s.Type)
	}
	a := newArray(s.Dims, t)
	if len(s.Data) != a.n()*t.Size() {
		return 0, l.fail(native.ErrRuntime, "snapshot %q holds %d bytes, want %d", s.Key, len(s.Data), a.n()*t.Size())
	}
	a.buf.re, a.buf.im = decode(t, s.Data, a.n())
	return l.put(a), native.Success
}

func (l *Lib) SaveArray(key string, h native.Handle, file string, appendTo bool) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	if key == "" {
		return 0, l.fail(native.ErrArg, "empty key")
	}
	data := make([]byte, a.bytes())
	encode(a.dtype, a.buf.re, a.buf.im, data, a.n())
	idx, err := codec.Save(file, codec.Snapshot{Key: key, Type: int32(a.dtype), Dims: a.dims, Data: data}, appendTo)
	if err != nil {
		if errors.Is(err, codec.ErrCorrupt) {
			return 0, l.fail(native.ErrRuntime, "%v", err)
		}
		return 0, l.fail(native.ErrArg, "cannot write %s: %v", file, err)
	}
	return idx, native.Success
}

func (l *Lib) ReadArrayIndex(file string, index uint32) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	snaps, c := l.snapshots(file)
	if c != native.Success {
		return 0, c
	}
	if int(index) >= len(snaps) {
		return 0, l.fail(native.ErrArg, "index %d out of range, %s holds %d arrays", index, file, len(snaps))
	}
	return l.restore(snaps[index])
}

func (l *Lib) ReadArrayKey(file, key string) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	snaps, c := l.snapshots(file)
	if c != native.Success {
		return 0, c
	}
	s, err := codec.Lookup(snaps, key)
	if err != nil {
		return 0, l.fail(native.ErrArg, "%v", err)
	}
	return l.restore(s)
}

func (l *Lib) ReadArrayKeyCheck(file, key string) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	snaps, c := l.snapshots(file)
	if c != native.Success {
		return -1, c
	}
	return codec.IndexOf(snaps, key), native.Success
}
