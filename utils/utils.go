package utils

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/tantralabs/bspx/models"
)

// Arange returns min, min+step, ... up to and including max.
func Arange(min float64, max float64, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	a := make([]float64, int(math.Floor((max-min)/step+1e-9))+1)
	for i := range a {
		a[i] = min + float64(i)*step
	}
	return a
}

// CreateKeyValuePairs make a string interface human readable
func CreateKeyValuePairs(m map[string]interface{}, ignoreLowerCase bool, oldBytes ...*bytes.Buffer) string {
	var b *bytes.Buffer
	if len(oldBytes) > 0 {
		b = oldBytes[0]
	} else {
		b = new(bytes.Buffer)
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprint(b, "\n{\n")
	for _, key := range keys {
		value := m[key]
		firstLetter := string(key[0])
		upperCaseFirstLetter := strings.ToUpper(firstLetter)
		if !ignoreLowerCase || upperCaseFirstLetter == firstLetter {
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Struct {
				fmt.Fprint(b, " ", key, ": ")
				CreateKeyValuePairs(structs.Map(value), ignoreLowerCase, b)
			} else if nested, ok := value.(map[string]interface{}); ok {
				fmt.Fprint(b, " ", key, ": ")
				CreateKeyValuePairs(nested, ignoreLowerCase, b)
			} else {
				fmt.Fprint(b, " ", key, ": ", value, ",\n")
			}
		}
	}
	fmt.Fprint(b, "}\n")
	return b.String()
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// ToFixed rounds num half away from zero to precision decimals.
func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

func RoundToNearest(num float64, interval float64) float64 {
	return math.Round(num/interval) * interval
}

// GetOptionSymbol formats TICKER-STRIKE-DDMONYY-C|P, e.g. AAPL-150-17JAN25-C. The strike
// is printed to at most four decimals.
func GetOptionSymbol(ticker string, expiry time.Time, strike float64, optionType models.OptionType) string {
	year := strconv.Itoa(expiry.Year())[2:4]
	month := strings.ToUpper(expiry.Month().String())[:3]
	day := strconv.Itoa(expiry.Day())
	var oType string
	switch optionType {
	case models.Call:
		oType = "C"
	case models.Put:
		oType = "P"
	}
	return ticker + "-" + strconv.FormatFloat(ToFixed(strike, 4), 'f', -1, 64) + "-" + day + month + year + "-" + oType
}

// GetNextFriday returns midnight UTC of the first Friday strictly after currentTime, with
// the weekday taken in UTC.
func GetNextFriday(currentTime time.Time) time.Time {
	currentTime = currentTime.UTC()
	dayDiff := 5 - currentTime.Weekday()
	if dayDiff <= 0 {
		dayDiff += 7
	}
	return currentTime.Truncate(24 * time.Hour).Add(time.Hour * 24 * time.Duration(dayDiff))
}

// GetLastFridayOfMonth returns midnight UTC of the last Friday in the UTC month of currentTime.
func GetLastFridayOfMonth(currentTime time.Time) time.Time {
	year, month, _ := currentTime.UTC().Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	currentTime = time.Date(year, month, lastOfMonth, 0, 0, 0, 0, time.UTC)
	for currentTime.Weekday() != time.Friday {
		currentTime = currentTime.AddDate(0, 0, -1)
	}
	return currentTime
}

// YearFraction returns the time from now to expiry in years of daysPerYear days. It never
// returns less than one day, the shortest life an option is priced with.
func YearFraction(now, expiry time.Time, daysPerYear float64) float64 {
	days := expiry.Sub(now).Hours() / 24
	return math.Max(days, 1) / daysPerYear
}
