package build

import (
	"fmt"
	"strings"
)

// Color is a chat-service background color.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
	ColorRandom Color = "random"
)

// Result is the terminal status of a build. Ordinals are totally ordered,
// lower is better.
type Result struct {
	ordinal int
	name    string
	color   Color
}

var (
	ResultSuccess  = Result{ordinal: 0, name: "SUCCESS", color: ColorGreen}
	ResultUnstable = Result{ordinal: 1, name: "UNSTABLE", color: ColorYellow}
	ResultFailure  = Result{ordinal: 2, name: "FAILURE", color: ColorRed}
	ResultNotBuilt = Result{ordinal: 3, name: "NOT_BUILT", color: ColorGray}
	ResultAborted  = Result{ordinal: 4, name: "ABORTED", color: ColorPurple}
)

var resultsByName = map[string]Result{
	ResultSuccess.name:  ResultSuccess,
	ResultUnstable.name: ResultUnstable,
	ResultFailure.name:  ResultFailure,
	ResultNotBuilt.name: ResultNotBuilt,
	ResultAborted.name:  ResultAborted,
}

func ParseResult(value string) (Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if r, ok := resultsByName[normalized]; ok {
		return r, nil
	}
	return Result{}, fmt.Errorf("%w: %s", ErrInvalidResult, value)
}

// Results lists the vocabulary from best to worst.
func Results() []Result {
	return []Result{ResultSuccess, ResultUnstable, ResultFailure, ResultNotBuilt, ResultAborted}
}

func (r Result) Ordinal() int   { return r.ordinal }
func (r Result) String() string { return r.name }
func (r Result) Color() Color   { return r.color }
func (r Result) IsZero() bool   { return r.name == "" }

func (r Result) IsBetterOrEqualTo(other Result) bool {
	return r.ordinal <= other.ordinal
}

func (r Result) IsWorseThan(other Result) bool {
	return r.ordinal > other.ordinal
}

// Classify returns the severity rank and display color of a result.
func Classify(r Result) (int, Color) {
	return r.ordinal, r.color
}
