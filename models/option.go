package models

import (
	"errors"
	"fmt"
	"strings"
)

// OptionType selects the call or put side of a European option.
type OptionType int

const (
	Call OptionType = iota
	Put
)

var optionTypes = [...]string{
	"call",
	"put",
}

// ErrUndefinedOptionType is returned when parsing anything other than a call or a put.
var ErrUndefinedOptionType = errors.New("undefined option type")

// UndefinedOptionTypeError is the panic value raised when a formula is dispatched on an
// OptionType that is neither Call nor Put. Such a value can only be forged by conversion.
type UndefinedOptionTypeError struct {
	Value OptionType
}

func (e UndefinedOptionTypeError) Error() string {
	return fmt.Sprintf("undefined option type %d: expected call or put", int(e.Value))
}

func (e UndefinedOptionTypeError) Unwrap() error {
	return ErrUndefinedOptionType
}

// ParseOptionType converts "call" or "c" and "put" or "p", in any case and ignoring
// surrounding spaces.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w %q: expected call or put", ErrUndefinedOptionType, s)
}

// Validate returns an UndefinedOptionTypeError for values other than Call and Put.
func (t OptionType) Validate() error {
	if t != Call && t != Put {
		return UndefinedOptionTypeError{Value: t}
	}
	return nil
}

// MustValidate panics with UndefinedOptionTypeError for values other than Call and Put.
func (t OptionType) MustValidate() {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

func (t OptionType) String() string {
	if t.Validate() != nil {
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
	return optionTypes[t]
}

// OptionTypes lists both sides, calls first.
func OptionTypes() []OptionType {
	return []OptionType{Call, Put}
}

// DayCount selects the annualization divisor used to quote theta per day.
type DayCount int

const (
	Trading DayCount = iota
	Calendar
)

const (
	TradingDaysPerYear  = 252
	CalendarDaysPerYear = 365
)

var dayCounts = [...]string{
	"trading",
	"calendar",
}

// ParseDayCount converts "trading" or "calendar", in any case and ignoring surrounding
// spaces.
func ParseDayCount(s string) (DayCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trading":
		return Trading, nil
	case "calendar":
		return Calendar, nil
	}
	return 0, fmt.Errorf("unknown day count %q: expected trading or calendar", s)
}

func (d DayCount) String() string {
	if d != Trading && d != Calendar {
		return fmt.Sprintf("DayCount(%d)", int(d))
	}
	return dayCounts[d]
}
