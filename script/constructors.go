package script

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/robertkrimen/otto"

	"github.com/matscript/matscript/mat"
	"github.com/matscript/matscript/ml"
	"github.com/matscript/matscript/wrapper"
)

var errBadMatArgs = errors.New("unable to construct a Mat from the given arguments")

// newMat is the script side Mat constructor, it dispatches on the
// shape of its arguments:
//
//	Mat()                               empty matrix
//	Mat([[..], [..]] [, type])          nested row major values
//	Mat([mat, mat, ...])                channel merge
//	Mat(rows, cols, type [, fill])      explicit size, optional fill
func (vm *VM) newMat(call otto.FunctionCall) otto.Value {
	w, err := matFromCall(call)
	if err != nil {
		panic(call.Otto.MakeCustomError("MatError", err.Error()))
	}
	return mustValue(call.Otto, w)
}

// newParamGrid is the script side ParamGrid constructor, it accepts
// either the three (minVal, maxVal, logStep) values or a single SVM
// parameter identifier to get the stock grid for it.
func (vm *VM) newParamGrid(call otto.FunctionCall) otto.Value {
	var grid *ml.ParamGrid
	var err error

	args := call.ArgumentList
	switch len(args) {
	case 1:
		id, convErr := args[0].ToInteger()
		if convErr != nil {
			err = convErr
		} else {
			grid, err = ml.DefaultGrid(ml.SVMParam(id))
		}
	case 3:
		var vals [3]float64
		for i := range vals {
			if vals[i], err = args[i].ToFloat(); err != nil {
				break
			}
		}
		if err == nil {
			grid, err = ml.NewParamGrid(vals[0], vals[1], vals[2])
		}
	default:
		err = errors.New("expected args: (minVal, maxVal, logStep) or (svmParamId)")
	}

	if err != nil {
		panic(call.Otto.MakeCustomError("ParamGridError", err.Error()))
	}
	return mustValue(call.Otto, wrapper.WrapParamGrid(grid))
}

func mustValue(vm *otto.Otto, v interface{}) otto.Value {
	value, err := vm.ToValue(v)
	if err != nil {
		panic(vm.MakeCustomError("MatError", err.Error()))
	}
	return value
}

func matFromCall(call otto.FunctionCall) (*wrapper.Mat, error) {
	args := call.ArgumentList
	if len(args) == 0 {
		return wrapper.WrapMat(mat.Empty()), nil
	}

	if first := args[0]; first.IsObject() && first.Object().Class() == "Array" {
		return matFromArray(args)
	} else if first.IsNumber() {
		return matFromSize(args)
	}

	return nil, errBadMatArgs
}

// matFromArray covers both array shaped constructions: a list of Mat
// instances to merge into channels and nested row major values.
func matFromArray(args []otto.Value) (*wrapper.Mat, error) {
	obj := args[0].Object()
	length, err := arrayLength(obj)
	if err != nil {
		return nil, err
	} else if length == 0 {
		return nil, errors.New("expected a non empty array")
	}

	first, err := exportElement(obj, 0)
	if err != nil {
		return nil, err
	}

	if _, isMat := first.(*wrapper.Mat); isMat {
		return matFromChannels(obj, length)
	}
	return matFromNested(obj, length, args[1:])
}

func matFromChannels(obj *otto.Object, length int) (*wrapper.Mat, error) {
	channels := make([]*mat.Mat, length)
	for i := 0; i < length; i++ {
		el, err := exportElement(obj, i)
		if err != nil {
			return nil, err
		}
		ch, isMat := el.(*wrapper.Mat)
		if !isMat || ch.IsNull() {
			return nil, fmt.Errorf("expected channel %d to be an instance of Mat", i)
		}
		channels[i] = ch.Unwrap()
	}

	merged, err := mat.Merge(channels)
	if err != nil {
		return nil, err
	}
	return wrapper.WrapMat(merged), nil
}

func matFromNested(obj *otto.Object, length int, rest []otto.Value) (*wrapper.Mat, error) {
	mtype := mat.MatTypeCV64F
	if len(rest) > 0 {
		code, err := typeCode(rest[0])
		if err != nil {
			return nil, err
		}
		mtype = code
	}

	values := make([][]float64, length)
	for i := 0; i < length; i++ {
		el, err := exportElement(obj, i)
		if err != nil {
			return nil, err
		}
		row, ok := toFloatSlice(el)
		if !ok {
			return nil, fmt.Errorf("expected row %d to be an array of numbers", i)
		}
		values[i] = row
	}

	m, err := mat.FromNested(values, mtype)
	if err != nil {
		return nil, err
	}
	return wrapper.WrapMat(m), nil
}

func matFromSize(args []otto.Value) (*wrapper.Mat, error) {
	if len(args) < 3 || !args[1].IsNumber() {
		return nil, mat.ErrInvalidType
	}

	rows, err := args[0].ToInteger()
	if err != nil {
		return nil, err
	}
	cols, err := args[1].ToInteger()
	if err != nil {
		return nil, err
	}
	mtype, err := typeCode(args[2])
	if err != nil {
		return nil, err
	}

	if len(args) > 3 {
		scalar, err := scalarArg(args[3], mtype.Channels())
		if err != nil {
			return nil, err
		}
		m, err := mat.NewWithScalar(int(rows), int(cols), mtype, scalar)
		if err != nil {
			return nil, err
		}
		return wrapper.WrapMat(m), nil
	}

	m, err := mat.New(int(rows), int(cols), mtype)
	if err != nil {
		return nil, err
	}
	return wrapper.WrapMat(m), nil
}

// scalarArg accepts either a single number, replicated on every
// channel, or an array of per channel values.
func scalarArg(arg otto.Value, channels int) (mat.Scalar, error) {
	if arg.IsNumber() {
		v, err := arg.ToFloat()
		if err != nil {
			return mat.Scalar{}, err
		}
		fill := make([]float64, channels)
		for i := range fill {
			fill[i] = v
		}
		return mat.NewScalar(fill...), nil
	}

	if arg.IsObject() && arg.Object().Class() == "Array" {
		el, err := arg.Export()
		if err != nil {
			return mat.Scalar{}, err
		}
		if values, ok := toFloatSlice(el); ok {
			return mat.NewScalar(values...), nil
		}
	}

	return mat.Scalar{}, errors.New("expected fill value to be a number or an array of numbers")
}

func typeCode(arg otto.Value) (mat.MatType, error) {
	if !arg.IsNumber() {
		return 0, mat.ErrInvalidType
	}
	code, err := arg.ToInteger()
	if err != nil {
		return 0, mat.ErrInvalidType
	}
	mtype := mat.MatType(code)
	if !mtype.Valid() {
		return 0, mat.ErrInvalidType
	}
	return mtype, nil
}

func arrayLength(obj *otto.Object) (int, error) {
	lv, err := obj.Get("length")
	if err != nil {
		return 0, err
	}
	length, err := lv.ToInteger()
	if err != nil {
		return 0, err
	}
	return int(length), nil
}

func exportElement(obj *otto.Object, i int) (interface{}, error) {
	el, err := obj.Get(strconv.Itoa(i))
	if err != nil {
		return nil, err
	}
	return el.Export()
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toFloatSlice converts whatever concrete slice type the interpreter
// exported a script array to.
func toFloatSlice(v interface{}) ([]float64, bool) {
	if s, ok := v.([]float64); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}

	out := make([]float64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		f, ok := toFloat(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
