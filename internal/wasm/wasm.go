//go:build js && wasm

// Package main provides the wasm bridge that exposes the calendar converter
// to a JavaScript host. It registers toJulianDay and fromJulianDay in the
// global scope, along with the calJulian and calGregorian flag constants.
//
// Results are returned as plain objects rather than thrown exceptions: a
// successful call carries the converted values, a failed one an "error"
// string. Argument and flag checking happens here, at the boundary, before
// anything reaches the converter.
package main

import (
	"fmt"
	"math"

	//nolint
	"syscall/js"

	"github.com/theory/julianday/calendar"
)

func toJulianDay(_ js.Value, args []js.Value) any {
	if len(args) != 5 {
		return failure(fmt.Errorf(
			"%w: toJulianDay takes 5 arguments; got %d",
			calendar.ErrInvalidArgument, len(args),
		))
	}
	nums, err := numbers(args)
	if err != nil {
		return failure(err)
	}

	system, err := systemFor(nums[4])
	if err != nil {
		return failure(err)
	}

	date := calendar.Date{
		Year:  int(nums[0]),
		Month: int(nums[1]),
		Day:   int(nums[2]),
		Hour:  nums[3],
	}
	jd, err := calendar.ToJulianDay(date, system)
	if err != nil {
		return failure(err)
	}
	return map[string]any{"jd": float64(jd)}
}

func fromJulianDay(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return failure(fmt.Errorf(
			"%w: fromJulianDay takes 2 arguments; got %d",
			calendar.ErrInvalidArgument, len(args),
		))
	}
	nums, err := numbers(args)
	if err != nil {
		return failure(err)
	}

	system, err := systemFor(nums[1])
	if err != nil {
		return failure(err)
	}

	date, err := calendar.FromJulianDay(calendar.JulianDay(nums[0]), system)
	if err != nil {
		return failure(err)
	}
	return map[string]any{
		"year":  date.Year,
		"month": date.Month,
		"day":   date.Day,
		"hour":  date.Hour,
	}
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("toJulianDay", js.FuncOf(toJulianDay))
	js.Global().Set("fromJulianDay", js.FuncOf(fromJulianDay))
	js.Global().Set("calJulian", js.ValueOf(0))
	js.Global().Set("calGregorian", js.ValueOf(1))

	<-stream
}

// numbers unpacks args as float64s, rejecting anything the host did not
// pass as a number.
func numbers(args []js.Value) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		if arg.Type() != js.TypeNumber {
			return nil, fmt.Errorf(
				"%w: argument %d is %v; expected a number",
				calendar.ErrInvalidArgument, i, arg.Type(),
			)
		}
		nums[i] = arg.Float()
	}
	return nums, nil
}

// systemFor maps the host-side calendar flag to a System. The flag must be
// exactly 0 or 1; fractional or out-of-range values never reach the
// converter.
func systemFor(flag float64) (calendar.System, error) {
	if math.IsNaN(flag) || math.IsInf(flag, 0) || flag != math.Trunc(flag) {
		return 0, fmt.Errorf(
			"%w: calendar flag must be 0 or 1; got %v",
			calendar.ErrInvalidArgument, flag,
		)
	}
	return calendar.SystemFor(int(flag))
}

// failure wraps err for return to the JavaScript caller.
func failure(err error) any {
	return map[string]any{"error": err.Error()}
}
