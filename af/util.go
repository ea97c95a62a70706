package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// SaveArray stores a under key in file and returns its index there. With
// appendTo set the file is extended instead of replaced.
func SaveArray(key string, a *Array, file string, appendTo bool) (int, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	idx, c := lib().SaveArray(key, h, file, appendTo)
	return idx, check("save_array", c)
}

func ReadArrayByIndex(file string, index uint32) (*Array, error) {
	h, c := lib().ReadArrayIndex(file, index)
	return wrap("read_array_index", h, c)
}

func ReadArrayByKey(file, key string) (*Array, error) {
	h, c := lib().ReadArrayKey(file, key)
	return wrap("read_array_key", h, c)
}

// ReadArrayKeyCheck returns the index of key in file, or -1.
func ReadArrayKeyCheck(file, key string) (int, error) {
	idx, c := lib().ReadArrayKeyCheck(file, key)
	return idx, check("read_array_key_check", c)
}

// SizeOf returns the element size the library uses for t.
func SizeOf(t DType) (uint64, error) {
	n, c := lib().SizeOf(native.DType(t))
	return n, check("get_size_of", c)
}
