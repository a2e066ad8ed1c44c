// Piecewise-linear lookup over VADC calibration tables
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import "pmic-vadc/pkg/errors"

// MapPoint is one knot of a sensor response curve.
type MapPoint struct {
	X int32
	Y int32
}

// Table is an ordered set of knots. A table may be ascending or descending
// along either axis; the direction is detected from its first two points.
type Table []MapPoint

// axis selects which coordinate of a MapPoint is searched.
type axis bool

const (
	axisX axis = false
	axisY axis = true
)

func (p MapPoint) get(a axis) int64 {
	if a == axisY {
		return int64(p.Y)
	}
	return int64(p.X)
}

// LookupYForX returns the y value for input on the x axis, interpolating
// linearly between the bracketing knots. Inputs outside the table resolve to
// the y value of the nearest end point.
func LookupYForX(t Table, input int64) (int64, error) {
	return lookup(t, axisX, input)
}

// LookupXForY is the reverse of LookupYForX: it searches the y axis and
// returns the corresponding x value.
func LookupXForY(t Table, input int64) (int64, error) {
	return lookup(t, axisY, input)
}

func lookup(t Table, search axis, input int64) (int64, error) {
	if len(t) == 0 {
		return 0, errors.InvalidTableError()
	}
	paired := !search

	descending := true
	if len(t) > 1 && t[0].get(search) < t[1].get(search) {
		descending = false
	}

	i := 0
	for i < len(t) {
		v := t[i].get(search)
		if descending && v < input {
			break
		}
		if !descending && v > input {
			break
		}
		i++
	}

	switch i {
	case 0:
		return t[0].get(paired), nil
	case len(t):
		return t[len(t)-1].get(paired), nil
	}

	lo, hi := t[i-1], t[i]
	num := (hi.get(paired) - lo.get(paired)) * (input - lo.get(search))
	return num/(hi.get(search)-lo.get(search)) + lo.get(paired), nil
}
