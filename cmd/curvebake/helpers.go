package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/curvature"
	"github.com/npillmayer/curvature/curve"
)

var errPointSyntax = errors.New("expected x,y or x,y,left,right")

// pointList collects repeated -point flags.
type pointList []curve.Point

func (l *pointList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = p.Position.String()
	}
	return strings.Join(parts, " ")
}

func (l *pointList) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func parsePoint(s string) (curve.Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 4 {
		return curve.Point{}, fmt.Errorf("%q: %w", s, errPointSyntax)
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return curve.Point{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = x
	}
	p := curve.Point{Position: curvature.P(v[0], v[1])}
	if len(v) == 4 {
		p.LeftTangent, p.RightTangent = v[2], v[3]
	}
	return p, nil
}
