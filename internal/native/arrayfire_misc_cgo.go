//go:build arrayfire && cgo

package native

/*
#include <arrayfire.h>
#include <stdlib.h>

static void idx_set_seq(af_index_t *ix, int i, double b, double e, double s, bool batch) {
	ix[i].idx.seq.begin = b;
	ix[i].idx.seq.end = e;
	ix[i].idx.seq.step = s;
	ix[i].isSeq = true;
	ix[i].isBatch = batch;
}

static void idx_set_arr(af_index_t *ix, int i, af_array a) {
	ix[i].idx.arr = a;
	ix[i].isSeq = false;
	ix[i].isBatch = false;
}
*/
import "C"
import "unsafe"

func engine(h Handle) C.af_random_engine {
	return C.af_random_engine(unsafe.Pointer(uintptr(h)))
}

func ehdl(e C.af_random_engine) Handle { return Handle(uintptr(unsafe.Pointer(e))) }

func (afLib) CreateRandomEngine(typ int, seed uint64) (Handle, Code) {
	var out C.af_random_engine
	e := C.af_create_random_engine(&out, C.af_random_engine_type(typ), C.ulonglong(seed))
	return ehdl(out), code(e)
}

func (afLib) RetainRandomEngine(h Handle) (Handle, Code) {
	var out C.af_random_engine
	e := C.af_retain_random_engine(&out, engine(h))
	return ehdl(out), code(e)
}

func (afLib) ReleaseRandomEngine(h Handle) Code {
	return code(C.af_release_random_engine(engine(h)))
}

func (afLib) RandomEngineSetType(h Handle, typ int) Code {
	en := engine(h)
	return code(C.af_random_engine_set_type(&en, C.af_random_engine_type(typ)))
}

func (afLib) RandomEngineType(h Handle) (int, Code) {
	var t C.af_random_engine_type
	e := C.af_random_engine_get_type(&t, engine(h))
	return int(t), code(e)
}

func (afLib) RandomEngineSetSeed(h Handle, seed uint64) Code {
	en := engine(h)
	return code(C.af_random_engine_set_seed(&en, C.ulonglong(seed)))
}

func (afLib) RandomEngineSeed(h Handle) (uint64, Code) {
	var s C.ulonglong
	e := C.af_random_engine_get_seed(&s, engine(h))
	return uint64(s), code(e)
}

func (afLib) DefaultRandomEngine() (Handle, Code) {
	var out C.af_random_engine
	e := C.af_get_default_random_engine(&out)
	return ehdl(out), code(e)
}

func (afLib) SetDefaultRandomEngineType(typ int) Code {
	return code(C.af_set_default_random_engine_type(C.af_random_engine_type(typ)))
}

func (afLib) RandomUniform(dims []int64, t DType, h Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_random_uniform(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t), engine(h))
	return hdl(out), code(e)
}

func (afLib) RandomNormal(dims []int64, t DType, h Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_random_normal(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t), engine(h))
	return hdl(out), code(e)
}

func (afLib) Randu(dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_randu(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) Randn(dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_randn(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) SetSeed(seed uint64) Code { return code(C.af_set_seed(C.ulonglong(seed))) }

func (afLib) Seed() (uint64, Code) {
	var s C.ulonglong
	e := C.af_get_seed(&s)
	return uint64(s), code(e)
}

func (afLib) CreateSparse(rows, cols int64, vals, rowIdx, colIdx Handle, storage int) (Handle, Code) {
	var out C.af_array
	e := C.af_create_sparse_array(&out, C.dim_t(rows), C.dim_t(cols), arr(vals), arr(rowIdx), arr(colIdx),
		C.af_storage(storage))
	return hdl(out), code(e)
}

func (afLib) CreateSparseFromHost(rows, cols, nnz int64, vals []byte, rowIdx, colIdx []int32, t DType, storage int) (Handle, Code) {
	if len(rowIdx) == 0 || len(colIdx) == 0 {
		return 0, ErrArg
	}
	var out C.af_array
	e := C.af_create_sparse_array_from_ptr(&out, C.dim_t(rows), C.dim_t(cols), C.dim_t(nnz), bytePtr(vals),
		(*C.int)(unsafe.Pointer(&rowIdx[0])), (*C.int)(unsafe.Pointer(&colIdx[0])),
		C.af_dtype(t), C.af_storage(storage), C.af_source(C.afHost))
	return hdl(out), code(e)
}

func (afLib) SparseFromDense(dense Handle, storage int) (Handle, Code) {
	var out C.af_array
	e := C.af_create_sparse_array_from_dense(&out, arr(dense), C.af_storage(storage))
	return hdl(out), code(e)
}

func (afLib) SparseConvertTo(in Handle, storage int) (Handle, Code) {
	var out C.af_array
	e := C.af_sparse_convert_to(&out, arr(in), C.af_storage(storage))
	return hdl(out), code(e)
}

func (afLib) SparseToDense(in Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_sparse_to_dense(&out, arr(in))
	return hdl(out), code(e)
}

func (afLib) SparseInfo(in Handle) (vals, rowIdx, colIdx Handle, storage int, c Code) {
	var v, r, cl C.af_array
	var st C.af_storage
	e := C.af_sparse_get_info(&v, &r, &cl, &st, arr(in))
	return hdl(v), hdl(r), hdl(cl), int(st), code(e)
}

func (afLib) SparseComponent(in Handle, comp SparseComponent) (Handle, Code) {
	var out C.af_array
	var e C.af_err
	switch comp {
	case SparseValues:
		e = C.af_sparse_get_values(&out, arr(in))
	case SparseRowIdx:
		e = C.af_sparse_get_row_idx(&out, arr(in))
	case SparseColIdx:
		e = C.af_sparse_get_col_idx(&out, arr(in))
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) SparseNNZ(in Handle) (int64, Code) {
	var n C.dim_t
	e := C.af_sparse_get_nnz(&n, arr(in))
	return int64(n), code(e)
}

func (afLib) SparseStorage(in Handle) (int, Code) {
	var st C.af_storage
	e := C.af_sparse_get_storage(&st, arr(in))
	return int(st), code(e)
}

func (afLib) Mean(in Handle, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_mean(&out, arr(in), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) MeanWeighted(in, w Handle, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_mean_weighted(&out, arr(in), arr(w), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) Var(in Handle, bias int, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_var_v2(&out, arr(in), C.af_var_bias(bias), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) VarWeighted(in, w Handle, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_var_weighted(&out, arr(in), arr(w), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) MeanVar(in, w Handle, bias int, dim int64) (Handle, Handle, Code) {
	var mean, vr C.af_array
	e := C.af_meanvar(&mean, &vr, arr(in), arr(w), C.af_var_bias(bias), C.dim_t(dim))
	return hdl(mean), hdl(vr), code(e)
}

func (afLib) Stdev(in Handle, bias int, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_stdev_v2(&out, arr(in), C.af_var_bias(bias), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) Cov(x, y Handle, bias int) (Handle, Code) {
	var out C.af_array
	e := C.af_cov_v2(&out, arr(x), arr(y), C.af_var_bias(bias))
	return hdl(out), code(e)
}

func (afLib) Median(in Handle, dim int64) (Handle, Code) {
	var out C.af_array
	e := C.af_median(&out, arr(in), C.dim_t(dim))
	return hdl(out), code(e)
}

func (afLib) MeanAll(in Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_mean_all(&r, &i, arr(in))
	return float64(r), float64(i), code(e)
}

func (afLib) MeanAllWeighted(in, w Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_mean_all_weighted(&r, &i, arr(in), arr(w))
	return float64(r), float64(i), code(e)
}

func (afLib) VarAll(in Handle, bias int) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_var_all_v2(&r, &i, arr(in), C.af_var_bias(bias))
	return float64(r), float64(i), code(e)
}

func (afLib) VarAllWeighted(in, w Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_var_all_weighted(&r, &i, arr(in), arr(w))
	return float64(r), float64(i), code(e)
}

func (afLib) StdevAll(in Handle, bias int) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_stdev_all_v2(&r, &i, arr(in), C.af_var_bias(bias))
	return float64(r), float64(i), code(e)
}

func (afLib) MedianAll(in Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_median_all(&r, &i, arr(in))
	return float64(r), float64(i), code(e)
}

func (afLib) Corrcoef(x, y Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_corrcoef(&r, &i, arr(x), arr(y))
	return float64(r), float64(i), code(e)
}

func (afLib) TopK(in Handle, k, dim int, order int) (Handle, Handle, Code) {
	var vals, idx C.af_array
	e := C.af_topk(&vals, &idx, arr(in), C.int(k), C.int(dim), C.af_topk_function(order))
	return hdl(vals), hdl(idx), code(e)
}

func seqs(s []Seq) []C.af_seq {
	out := make([]C.af_seq, len(s))
	for i, q := range s {
		out[i] = C.af_seq{begin: C.double(q.Begin), end: C.double(q.End), step: C.double(q.Step)}
	}
	return out
}

func (afLib) Index(in Handle, s []Seq) (Handle, Code) {
	if len(s) == 0 {
		return 0, ErrArg
	}
	cs := seqs(s)
	var out C.af_array
	e := C.af_index(&out, arr(in), C.uint(len(cs)), &cs[0])
	return hdl(out), code(e)
}

func (afLib) Lookup(in, idx Handle, dim uint32) (Handle, Code) {
	var out C.af_array
	e := C.af_lookup(&out, arr(in), arr(idx), C.uint(dim))
	return hdl(out), code(e)
}

// AssignSeq writes rhs into lhs in place; passing out == lhs is how libaf
// selects the in-place path.
func (afLib) AssignSeq(lhs Handle, s []Seq, rhs Handle) (Handle, Code) {
	if len(s) == 0 {
		return 0, ErrArg
	}
	cs := seqs(s)
	out := arr(lhs)
	e := C.af_assign_seq(&out, arr(lhs), C.uint(len(cs)), &cs[0], arr(rhs))
	return hdl(out), code(e)
}

func indexers(idx []Index) *C.af_index_t {
	ix := (*C.af_index_t)(C.calloc(C.size_t(len(idx)), C.size_t(unsafe.Sizeof(C.af_index_t{}))))
	for i, x := range idx {
		if x.IsSeq {
			C.idx_set_seq(ix, C.int(i), C.double(x.Seq.Begin), C.double(x.Seq.End), C.double(x.Seq.Step),
				C.bool(x.IsBatch))
		} else {
			C.idx_set_arr(ix, C.int(i), arr(x.Arr))
		}
	}
	return ix
}

func (afLib) IndexGen(in Handle, idx []Index) (Handle, Code) {
	if len(idx) == 0 {
		return 0, ErrArg
	}
	ix := indexers(idx)
	defer C.free(unsafe.Pointer(ix))
	var out C.af_array
	e := C.af_index_gen(&out, arr(in), C.dim_t(len(idx)), ix)
	return hdl(out), code(e)
}

func (afLib) AssignGen(lhs Handle, idx []Index, rhs Handle) (Handle, Code) {
	if len(idx) == 0 {
		return 0, ErrArg
	}
	ix := indexers(idx)
	defer C.free(unsafe.Pointer(ix))
	out := arr(lhs)
	e := C.af_assign_gen(&out, arr(lhs), C.dim_t(len(idx)), ix, arr(rhs))
	return hdl(out), code(e)
}

func win(h Handle) C.af_window { return C.af_window(h) }

// cellOf returns a C af_cell for c and the function that frees its title.
// A nil cell addresses the whole window.
func cellOf(c *Cell) (*C.af_cell, func()) {
	cell := (*C.af_cell)(C.calloc(1, C.size_t(unsafe.Sizeof(C.af_cell{}))))
	cell.row, cell.col = -1, -1
	if c != nil {
		cell.row, cell.col = C.int(c.Row), C.int(c.Col)
		cell.cmap = C.af_colormap(c.ColorMap)
		if c.Title != "" {
			cell.title = C.CString(c.Title)
		}
	}
	return cell, func() {
		if cell.title != nil {
			C.free(unsafe.Pointer(cell.title))
		}
		C.free(unsafe.Pointer(cell))
	}
}

func optCString(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func (afLib) CreateWindow(width, height int, title string) (Handle, Code) {
	ct := C.CString(title)
	defer C.free(unsafe.Pointer(ct))
	var out C.af_window
	e := C.af_create_window(&out, C.int(width), C.int(height), ct)
	return Handle(out), code(e)
}

func (afLib) DestroyWindow(w Handle) Code { return code(C.af_destroy_window(win(w))) }

func (afLib) SetPosition(w Handle, x, y uint32) Code {
	return code(C.af_set_position(win(w), C.uint(x), C.uint(y)))
}

func (afLib) SetTitle(w Handle, title string) Code {
	ct := C.CString(title)
	defer C.free(unsafe.Pointer(ct))
	return code(C.af_set_title(win(w), ct))
}

func (afLib) SetSize(w Handle, width, height uint32) Code {
	return code(C.af_set_size(win(w), C.uint(width), C.uint(height)))
}

func (afLib) SetVisibility(w Handle, visible bool) Code {
	return code(C.af_set_visibility(win(w), C.bool(visible)))
}

func (afLib) Grid(w Handle, rows, cols int) Code {
	return code(C.af_grid(win(w), C.int(rows), C.int(cols)))
}

func (afLib) Show(w Handle) Code { return code(C.af_show(win(w))) }

func (afLib) IsWindowClosed(w Handle) (bool, Code) {
	var b C.bool
	e := C.af_is_window_closed(&b, win(w))
	return bool(b), code(e)
}

func (afLib) DrawImage(w, in Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_image(win(w), arr(in), c))
}

func (afLib) DrawPlot2(w, x, y Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_plot_2d(win(w), arr(x), arr(y), c))
}

func (afLib) DrawPlot3(w, x, y, z Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_plot_3d(win(w), arr(x), arr(y), arr(z), c))
}

func (afLib) DrawPlotN(w, p Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_plot_nd(win(w), arr(p), c))
}

func (afLib) DrawScatter2(w, x, y Handle, marker int, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_scatter_2d(win(w), arr(x), arr(y), C.af_marker_type(marker), c))
}

func (afLib) DrawScatter3(w, x, y, z Handle, marker int, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_scatter_3d(win(w), arr(x), arr(y), arr(z), C.af_marker_type(marker), c))
}

func (afLib) DrawScatterN(w, p Handle, marker int, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_scatter_nd(win(w), arr(p), C.af_marker_type(marker), c))
}

func (afLib) DrawHist(w, x Handle, min, max float64, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_hist(win(w), arr(x), C.double(min), C.double(max), c))
}

func (afLib) DrawSurface(w, xv, yv, s Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_surface(win(w), arr(xv), arr(yv), arr(s), c))
}

func (afLib) DrawVectorField2(w, xp, yp, xd, yd Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_vector_field_2d(win(w), arr(xp), arr(yp), arr(xd), arr(yd), c))
}

func (afLib) DrawVectorFieldN(w, points, dirs Handle, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_draw_vector_field_nd(win(w), arr(points), arr(dirs), c))
}

func (afLib) SetAxesLimitsCompute(w, x, y, z Handle, exact bool, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_set_axes_limits_compute(win(w), arr(x), arr(y), arr(z), C.bool(exact), c))
}

func (afLib) SetAxesLimits2(w Handle, xmin, xmax, ymin, ymax float32, exact bool, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_set_axes_limits_2d(win(w), C.float(xmin), C.float(xmax), C.float(ymin), C.float(ymax),
		C.bool(exact), c))
}

func (afLib) SetAxesLimits3(w Handle, xmin, xmax, ymin, ymax, zmin, zmax float32, exact bool, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	return code(C.af_set_axes_limits_3d(win(w), C.float(xmin), C.float(xmax), C.float(ymin), C.float(ymax),
		C.float(zmin), C.float(zmax), C.bool(exact), c))
}

func (afLib) SetAxesTitles(w Handle, x, y, z string, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	cx, cy, cz := optCString(x), optCString(y), optCString(z)
	defer C.free(unsafe.Pointer(cx))
	defer C.free(unsafe.Pointer(cy))
	defer C.free(unsafe.Pointer(cz))
	return code(C.af_set_axes_titles(win(w), cx, cy, cz, c))
}

func (afLib) SetAxesLabelFormat(w Handle, x, y, z string, cell *Cell) Code {
	c, free := cellOf(cell)
	defer free()
	cx, cy, cz := optCString(x), optCString(y), optCString(z)
	defer C.free(unsafe.Pointer(cx))
	defer C.free(unsafe.Pointer(cy))
	defer C.free(unsafe.Pointer(cz))
	return code(C.af_set_axes_label_format(win(w), cx, cy, cz, c))
}
