//go:build !af_no_sparse

package af

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  []float32
		rowIdx  []int32
		colIdx  []int32
		storage SparseFormat
		want    error
	}{
		{"CSRRowOffsets", []float32{1, 2}, []int32{0, 1}, []int32{0, 1}, StorageCSR, ErrSize},
		{"CSCColOffsets", []float32{1, 2}, []int32{0, 1}, []int32{0, 1}, StorageCSC, ErrSize},
		{"COOLengths", []float32{1, 2}, []int32{0}, []int32{0, 1}, StorageCOO, ErrSize},
		{"Dense", []float32{1}, []int32{0}, []int32{0}, StorageDense, ErrArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SparseFromHost(2, 2, tt.values, tt.rowIdx, tt.colIdx, tt.storage)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSparseOnHost(t *testing.T) {
	hostOnly(t)
	dense := keep(t)(NewArray([]float32{1, 0, 0, 2}, NewDim4(2, 2)))

	_, err := SparseFromDense(dense, StorageCSR)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = SparseFromHost(2, 2, []float32{1, 2}, []int32{0, 1, 2}, []int32{0, 1}, StorageCSR)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = SparseNNZ(dense)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = SparseStorage(dense)
	assert.ErrorIs(t, err, ErrNotSupported)
}
