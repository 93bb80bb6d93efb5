package utils

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tantralabs/bspx/models"
)

func TestArange(t *testing.T) {
	cases := []struct {
		min, max, step float64
		expected       []float64
	}{
		{90, 110, 5, []float64{90, 95, 100, 105, 110}},
		{0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{0, 0.3, 0.1, []float64{0, 0.1, 0.2, 0.30000000000000004}},
		{5, 5, 1, []float64{5}},
		{5, 4, 1, nil},
		{0, 10, 0, nil},
	}
	for _, c := range cases {
		if got := Arange(c.min, c.max, c.step); !reflect.DeepEqual(got, c.expected) {
			t.Errorf("Arange(%v, %v, %v) = %v, expected %v", c.min, c.max, c.step, got, c.expected)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := RoundToNearest(148.7, 5); got != 150 {
		t.Errorf("RoundToNearest = %v", got)
	}
	if got := ToFixed(1.23456, 2); got != 1.23 {
		t.Errorf("ToFixed = %v", got)
	}
	if got := ToFixed(-1.235, 1); got != -1.2 {
		t.Errorf("ToFixed negative = %v", got)
	}
}

func TestGetNextFriday(t *testing.T) {
	cases := map[string]string{
		"2024-11-04": "2024-11-08", // Monday
		"2024-11-08": "2024-11-15", // Friday rolls to the next week
		"2024-11-09": "2024-11-15", // Saturday
	}
	for from, expected := range cases {
		now, _ := time.Parse(models.DateLayout, from)
		now = now.Add(15 * time.Hour)
		if got := GetNextFriday(now).Format(models.DateLayout); got != expected {
			t.Errorf("GetNextFriday(%s) = %s, expected %s", from, got, expected)
		}
	}
}

func TestGetNextFridayOutsideUTC(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)
	cases := map[time.Time]string{
		time.Date(2024, 11, 21, 21, 0, 0, 0, newYork):    "2024-11-29", // Friday 02:00 UTC
		time.Date(2024, 11, 21, 9, 0, 0, 0, newYork):     "2024-11-22",
		time.Date(2024, 11, 20, 15, 0, 0, 0, time.Local): "2024-11-22",
	}
	for from, expected := range cases {
		got := GetNextFriday(from)
		if got.Format(models.DateLayout) != expected || got.Weekday() != time.Friday || got.Location() != time.UTC {
			t.Errorf("GetNextFriday(%v) = %v, expected %s UTC", from, got, expected)
		}
	}
}

func TestGetLastFridayOfMonth(t *testing.T) {
	cases := map[string]string{
		"2024-11-04": "2024-11-29",
		"2024-05-31": "2024-05-31",
		"2025-02-10": "2025-02-28",
	}
	for from, expected := range cases {
		now, _ := time.Parse(models.DateLayout, from)
		if got := GetLastFridayOfMonth(now).Format(models.DateLayout); got != expected {
			t.Errorf("GetLastFridayOfMonth(%s) = %s, expected %s", from, got, expected)
		}
	}
}

func TestGetOptionSymbol(t *testing.T) {
	expiry := time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)
	if got := GetOptionSymbol("AAPL", expiry, 150, models.Call); got != "AAPL-150-17JAN25-C" {
		t.Errorf("call symbol %s", got)
	}
	if got := GetOptionSymbol("SPY", expiry, 452.5, models.Put); got != "SPY-452.5-17JAN25-P" {
		t.Errorf("put symbol %s", got)
	}
	if got := GetOptionSymbol("F", expiry, 0.1+0.2, models.Call); got != "F-0.3-17JAN25-C" {
		t.Errorf("strike noise leaked into %s", got)
	}
}

func TestYearFraction(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := YearFraction(now, now.AddDate(0, 0, 73), 365); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("73 days = %v years", got)
	}
	if got := YearFraction(now, now.Add(2*time.Hour), 252); got != 1.0/252 {
		t.Errorf("expected the one day floor, got %v", got)
	}
}

func TestCreateKeyValuePairs(t *testing.T) {
	type window struct {
		Short int
		Long  int
	}
	out := CreateKeyValuePairs(map[string]interface{}{
		"Ticker":  "AAPL",
		"Windows": window{Short: 20, Long: 50},
		"secret":  "hidden",
	}, true)
	for _, want := range []string{"Ticker: AAPL,", "Short: 20,", "Long: 50,"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("lower case key was printed: %s", out)
	}
	if strings.Index(out, "Ticker") > strings.Index(out, "Windows") {
		t.Errorf("keys are not sorted: %s", out)
	}
}
