package script

import (
	"errors"
	"fmt"

	"github.com/robertkrimen/otto"

	"github.com/matscript/matscript/mat"
	"github.com/matscript/matscript/wrapper"
)

// VM is a JavaScript interpreter with the Mat and ParamGrid
// constructors and the standard constants already defined.
type VM struct {
	*otto.Otto
}

// constants every VM exposes to its scripts, same names and values of
// the wrapped library.
var constants = map[string]int{
	"CV_8U":  int(mat.MatTypeCV8U),
	"CV_8S":  int(mat.MatTypeCV8S),
	"CV_16U": int(mat.MatTypeCV16U),
	"CV_16S": int(mat.MatTypeCV16S),
	"CV_32S": int(mat.MatTypeCV32S),
	"CV_32F": int(mat.MatTypeCV32F),
	"CV_64F": int(mat.MatTypeCV64F),

	"CV_8UC1": int(mat.MatTypeCV8UC1),
	"CV_8UC2": int(mat.MatTypeCV8UC2),
	"CV_8UC3": int(mat.MatTypeCV8UC3),
	"CV_8UC4": int(mat.MatTypeCV8UC4),

	"CV_8SC1": int(mat.MatTypeCV8SC1),
	"CV_8SC2": int(mat.MatTypeCV8SC2),
	"CV_8SC3": int(mat.MatTypeCV8SC3),
	"CV_8SC4": int(mat.MatTypeCV8SC4),

	"CV_16UC1": int(mat.MatTypeCV16UC1),
	"CV_16UC2": int(mat.MatTypeCV16UC2),
	"CV_16UC3": int(mat.MatTypeCV16UC3),
	"CV_16UC4": int(mat.MatTypeCV16UC4),

	"CV_16SC1": int(mat.MatTypeCV16SC1),
	"CV_16SC2": int(mat.MatTypeCV16SC2),
	"CV_16SC3": int(mat.MatTypeCV16SC3),
	"CV_16SC4": int(mat.MatTypeCV16SC4),

	"CV_32SC1": int(mat.MatTypeCV32SC1),
	"CV_32SC2": int(mat.MatTypeCV32SC2),
	"CV_32SC3": int(mat.MatTypeCV32SC3),
	"CV_32SC4": int(mat.MatTypeCV32SC4),

	"CV_32FC1": int(mat.MatTypeCV32FC1),
	"CV_32FC2": int(mat.MatTypeCV32FC2),
	"CV_32FC3": int(mat.MatTypeCV32FC3),
	"CV_32FC4": int(mat.MatTypeCV32FC4),

	"CV_64FC1": int(mat.MatTypeCV64FC1),
	"CV_64FC2": int(mat.MatTypeCV64FC2),
	"CV_64FC3": int(mat.MatTypeCV64FC3),
	"CV_64FC4": int(mat.MatTypeCV64FC4),

	"NORM_INF":    int(mat.NormInf),
	"NORM_L1":     int(mat.NormL1),
	"NORM_L2":     int(mat.NormL2),
	"NORM_MINMAX": int(mat.NormMinMax),

	"THRESH_BINARY":     int(mat.ThresholdBinary),
	"THRESH_BINARY_INV": int(mat.ThresholdBinaryInv),
	"THRESH_TRUNC":      int(mat.ThresholdTrunc),
	"THRESH_TOZERO":     int(mat.ThresholdToZero),
	"THRESH_TOZERO_INV": int(mat.ThresholdToZeroInv),

	"CC_STAT_LEFT":   mat.StatLeft,
	"CC_STAT_TOP":    mat.StatTop,
	"CC_STAT_WIDTH":  mat.StatWidth,
	"CC_STAT_HEIGHT": mat.StatHeight,
	"CC_STAT_AREA":   mat.StatArea,
}

// NewVM creates a VM and defines the constructors, the constants and
// an empty execution context in its global scope.
func NewVM() *VM {
	vm := &VM{Otto: otto.New()}

	for name, value := range constants {
		vm.Set(name, value)
	}

	vm.Set("Mat", vm.newMat)
	vm.Set("ParamGrid", vm.newParamGrid)
	vm.Set("ctx", wrapper.NewContext())

	return vm
}

// Clone returns an independent copy of this VM sharing nothing but
// the program definitions evaluated so far.
func (vm *VM) Clone() *VM {
	return &VM{Otto: vm.Copy()}
}

// RunWithContext evaluates code with a fresh execution context bound
// to the global ctx object, returning the context, the value of the
// last evaluated expression and an error if the run failed or the
// script flagged one on the context. Contract violations that panic
// inside the wrapped objects are returned as errors.
func (vm *VM) RunWithContext(code string) (ctx *wrapper.Context, val otto.Value, err error) {
	ctx = wrapper.NewContext()
	vm.Set("ctx", ctx)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
		val, err = vm.Run(code)
	}()

	if err != nil {
		return ctx, val, err
	} else if ctx.IsError() {
		return ctx, val, errors.New(ctx.Message())
	}

	return ctx, val, nil
}
