//go:build !af_no_sparse

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("sparse") }

// SparseFromArrays builds a rows x cols sparse array from device-resident
// values and s32 index arrays laid out for storage.
func SparseFromArrays(rows, cols int64, values, rowIdx, colIdx *Array, storage SparseFormat) (*Array, error) {
	hs, err := handles(values, rowIdx, colIdx)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{values, rowIdx, colIdx})
	h, c := lib().CreateSparse(rows, cols, hs[0], hs[1], hs[2], int(storage))
	return wrap("create_sparse_array", h, c)
}

// SparseFromHost builds a sparse array from host slices. For CSR, rowIdx
// holds rows+1 offsets; for COO both index slices hold one entry per value.
func SparseFromHost[T HostType](rows, cols int64, values []T, rowIdx, colIdx []int32, storage SparseFormat) (*Array, error) {
	nnz := int64(len(values))
	switch storage {
	case StorageCSR:
		if int64(len(rowIdx)) != rows+1 || int64(len(colIdx)) != nnz {
			return nil, argError(CodeSize, "create_sparse_array_from_ptr", "csr needs %d row offsets and %d column indices", rows+1, nnz)
		}
	case StorageCSC:
		if int64(len(colIdx)) != cols+1 || int64(len(rowIdx)) != nnz {
			return nil, argError(CodeSize, "create_sparse_array_from_ptr", "csc needs %d column offsets and %d row indices", cols+1, nnz)
		}
	case StorageCOO:
		if int64(len(rowIdx)) != nnz || int64(len(colIdx)) != nnz {
			return nil, argError(CodeSize, "create_sparse_array_from_ptr", "coo needs %d row and column indices", nnz)
		}
	default:
		return nil, argError(CodeArg, "create_sparse_array_from_ptr", "invalid storage %v", storage)
	}
	h, c := lib().CreateSparseFromHost(rows, cols, nnz, bytesOf(values), rowIdx, colIdx, native.DType(DTypeOf[T]()), int(storage))
	return wrap("create_sparse_array_from_ptr", h, c)
}

func SparseFromDense(dense *Array, storage SparseFormat) (*Array, error) {
	return op1("create_sparse_array_from_dense", dense, func(h native.Handle) (native.Handle, native.Code) {
		return lib().SparseFromDense(h, int(storage))
	})
}

func SparseConvertTo(in *Array, storage SparseFormat) (*Array, error) {
	return op1("sparse_convert_to", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().SparseConvertTo(h, int(storage))
	})
}

func SparseToDense(in *Array) (*Array, error) {
	return op1("sparse_to_dense", in, lib().SparseToDense)
}

// SparseInfo returns the component arrays and the storage of a sparse array.
func SparseInfo(in *Array) (values, rowIdx, colIdx *Array, storage SparseFormat, err error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, nil, 0, err
	}
	defer runtime.KeepAlive(in)
	v, r, col, st, c := lib().SparseInfo(h)
	values, rowIdx, colIdx, err = wrap3("sparse_get_info", v, r, col, c)
	return values, rowIdx, colIdx, SparseFormat(st), err
}

func sparseComponent(op string, in *Array, comp native.SparseComponent) (*Array, error) {
	return op1(op, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().SparseComponent(h, comp)
	})
}

func SparseValues(in *Array) (*Array, error) {
	return sparseComponent("sparse_get_values", in, native.SparseValues)
}

func SparseRowIdx(in *Array) (*Array, error) {
	return sparseComponent("sparse_get_row_idx", in, native.SparseRowIdx)
}

func SparseColIdx(in *Array) (*Array, error) {
	return sparseComponent("sparse_get_col_idx", in, native.SparseColIdx)
}

func SparseNNZ(in *Array) (int64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(in)
	n, c := lib().SparseNNZ(h)
	return n, check("sparse_get_nnz", c)
}

func SparseStorage(in *Array) (SparseFormat, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(in)
	s, c := lib().SparseStorage(h)
	return SparseFormat(s), check("sparse_get_storage", c)
}
