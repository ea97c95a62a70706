package native

// describe mirrors af_err_to_string for implementations that have no
// native string table.
func describe(c Code) string {
	switch c {
	case Success:
		return "Success"
	case ErrNoMem:
		return "Device out of memory"
	case ErrDriver:
		return "Driver not available or incompatible"
	case ErrRuntime:
		return "Runtime error"
	case ErrInvalidArray:
		return "Invalid array"
	case ErrArg:
		return "Invalid input argument"
	case ErrSize:
		return "Invalid input size"
	case ErrType:
		return "Function does not support this data type"
	case ErrDiffType:
		return "Input types are not the same"
	case ErrBatch:
		return "Invalid batch configuration"
	case ErrDevice:
		return "Input does not belong to the current device"
	case ErrNotSupported:
		return "Function not supported"
	case ErrNotConfig:
		return "Function not configured to build"
	case ErrNonFree:
		return "Function unavailable. ArrayFire compiled without Non-Free algorithms support"
	case ErrNoDbl:
		return "Double precision not supported for this device"
	case ErrNoGfx:
		return "Graphics functionality unavailable. ArrayFire compiled without Graphics support"
	case ErrNoHalf:
		return "Half precision floats not supported for this device"
	case ErrLoadLib:
		return "Failed to load dynamic library"
	case ErrLoadSym:
		return "Failed to load symbol"
	case ErrBkndMismatch:
		return "There was a mismatch between an array and the current backend"
	case ErrInternal:
		return "Internal error"
	}
	return "Unknown error"
}

// Describe returns the static message for c.
func Describe(c Code) string { return describe(c) }
