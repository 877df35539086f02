package hwy

import (
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
)

// DispatchLevel represents the lane arithmetic available on this host.
type DispatchLevel int

const (
	// DispatchScalar indicates no paired arithmetic, pure scalar kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchPaired indicates the host can run the paired (2x/4x lane) kernels
	// efficiently: SSE2 on amd64, ASIMD on arm64.
	DispatchPaired
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchPaired:
		return "paired"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the detected instruction set.
// Set by init() in dispatch_*.go files.
var currentName string

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the instruction set backing the current level.
// For example: "sse2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every call resolves to the fabric controller and runs the scalar
// kernels regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// ClusterSize returns the default number of processing elements in a cluster.
// It reads HWY_NUM_PE and falls back to GOMAXPROCS when the variable is unset
// or not a positive integer.
func ClusterSize() int {
	if val := os.Getenv("HWY_NUM_PE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return runtime.GOMAXPROCS(0)
}

// FabricControllerCID is the cluster id reported by the fabric controller,
// the single main core outside the accelerator cluster.
const FabricControllerCID = 32

// Role is the kind of processing element executing a kernel.
type Role int

const (
	// RoleFabricController is the main controller. It runs the scalar kernels.
	RoleFabricController Role = iota

	// RoleClusterCore is a core of the accelerator cluster. It runs the paired
	// kernels.
	RoleClusterCore
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleFabricController:
		return "fabric-controller"
	case RoleClusterCore:
		return "cluster-core"
	default:
		return "unknown"
	}
}

// PE identifies a processing element.
type PE struct {
	CoreID    int
	ClusterID int
}

// Role reports whether pe is the fabric controller or a cluster core.
func (pe PE) Role() Role {
	if pe.ClusterID == FabricControllerCID {
		return RoleFabricController
	}
	return RoleClusterCore
}

// IdentityFunc reports the processing element making the call. It cannot fail.
type IdentityFunc func() PE

var identity atomic.Pointer[IdentityFunc]

func defaultIdentity() PE {
	if currentLevel == DispatchScalar {
		return PE{CoreID: 0, ClusterID: FabricControllerCID}
	}
	return PE{CoreID: 0, ClusterID: 0}
}

// CurrentPE queries the identity of the calling processing element.
func CurrentPE() PE {
	if fn := identity.Load(); fn != nil {
		return (*fn)()
	}
	return defaultIdentity()
}

// SetIdentity replaces the identity source and returns a function restoring
// the previous one. Passing nil restores the built-in source, which maps
// scalar hosts to the fabric controller and paired hosts to core 0 of
// cluster 0.
//
// Usage:
//
//	restore := hwy.SetIdentity(func() hwy.PE {
//	    return hwy.PE{ClusterID: hwy.FabricControllerCID}
//	})
//	defer restore()
func SetIdentity(fn IdentityFunc) (restore func()) {
	var prev *IdentityFunc
	if fn == nil {
		prev = identity.Swap(nil)
	} else {
		prev = identity.Swap(&fn)
	}
	return func() { identity.Store(prev) }
}

// Variant holds the two implementations of one kernel. Scalar runs on the
// fabric controller, Paired on cluster cores. Both must produce identical
// outputs for identical inputs.
type Variant[F any] struct {
	Scalar F
	Paired F
}

// For returns the implementation for the given processing element.
func (v Variant[F]) For(pe PE) F {
	if pe.Role() == RoleFabricController {
		return v.Scalar
	}
	return v.Paired
}

// Current returns the implementation for the calling processing element.
func (v Variant[F]) Current() F {
	return v.For(CurrentPE())
}
