package models

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
)

func TestParseOptionType(t *testing.T) {
	cases := []struct {
		in       string
		expected OptionType
		ok       bool
	}{
		{"call", Call, true},
		{" PUT ", Put, true},
		{"c", Call, true},
		{"P", Put, true},
		{"straddle", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseOptionType(c.in)
		if !c.ok {
			if !errors.Is(err, ErrUndefinedOptionType) {
				t.Errorf("ParseOptionType(%q): expected ErrUndefinedOptionType, got %v", c.in, err)
			}
			continue
		}
		if err != nil || got != c.expected {
			t.Errorf("ParseOptionType(%q) = %v, %v", c.in, got, err)
		}
	}
}

func TestOptionTypeValidate(t *testing.T) {
	forged := OptionType(7)
	var undefined UndefinedOptionTypeError
	if err := forged.Validate(); !errors.As(err, &undefined) || undefined.Value != forged || !errors.Is(err, ErrUndefinedOptionType) {
		t.Errorf("Validate() = %v", err)
	}
	if forged.String() != "OptionType(7)" || Put.String() != "put" {
		t.Errorf("strings %s %s", forged, Put)
	}
	defer func() {
		if _, ok := recover().(UndefinedOptionTypeError); !ok {
			t.Error("MustValidate did not panic with UndefinedOptionTypeError")
		}
	}()
	forged.MustValidate()
}

func TestParseDayCount(t *testing.T) {
	for in, expected := range map[string]DayCount{"trading": Trading, " Calendar": Calendar} {
		if got, err := ParseDayCount(in); err != nil || got != expected {
			t.Errorf("ParseDayCount(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDayCount("weekly"); err == nil || !strings.Contains(err.Error(), "weekly") {
		t.Errorf("expected an unknown day count error, got %v", err)
	}
	if DayCount(3).String() != "DayCount(3)" {
		t.Errorf("String() = %s", DayCount(3))
	}
}

func TestDateCSV(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60)))
	if d.String() != "2024-03-02" {
		t.Errorf("NewDate kept the local day: %s", d)
	}

	bars := []*Bar{{Date: d, Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 1000}}
	out, err := gocsv.MarshalString(bars)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Date,Open,High,Low,Close,Volume\n2024-03-02,10,") {
		t.Errorf("csv %q", out)
	}
	var back []*Bar
	if err := gocsv.UnmarshalString(out, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || !back[0].Date.Equal(d.Time) || back[0].Close != 10.5 || back[0].Volume != 1000 {
		t.Errorf("round trip %+v", back)
	}

	var bad Date
	if err := bad.UnmarshalCSV("03/02/2024"); err == nil {
		t.Error("expected an error for a non ISO date")
	}
}

func TestDropUndefined(t *testing.T) {
	rows := Annotate([]*Bar{
		{Date: NewDate(time.Now()), Close: 1},
		{Date: NewDate(time.Now()), Close: 2},
	})
	rows[0].MACD = math.NaN()
	rows[1].NATR = 3
	got := DropUndefined(rows)
	if len(got) != 1 || got[0].Close != 2 {
		t.Errorf("DropUndefined = %+v", got)
	}
	if bars := Bars(rows); bars[1] != &rows[1].Bar {
		t.Error("Bars copied the rows")
	}
	ohlcv := GetOHLCV(Bars(rows))
	if len(ohlcv.Close) != 2 || ohlcv.Close[1] != 2 || !ohlcv.Date[0].Equal(rows[0].Date.Time) {
		t.Errorf("ohlcv %+v", ohlcv)
	}
}
