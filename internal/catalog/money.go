package catalog

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in US cents.
type Money int64

// Bounds that Times and Plus saturate at instead of wrapping.
const (
	MaxMoney = Money(math.MaxInt64)
	MinMoney = Money(math.MinInt64)
)

// Dollars returns a whole-dollar amount.
func Dollars(d int64) Money {
	return Money(d * 100)
}

// MoneyFromFloat rounds a decimal dollar amount to the nearest cent.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

func (m Money) Float() float64 {
	return float64(m) / 100
}

// Times multiplies the amount by a count, e.g. a per-person price by guests.
// A product outside the int64 range saturates at MaxMoney or MinMoney.
func (m Money) Times(n int) Money {
	if m == 0 || n == 0 {
		return 0
	}
	p := m * Money(n)
	if p/Money(n) != m || (n == -1 && m == MinMoney) {
		if (m < 0) != (n < 0) {
			return MinMoney
		}
		return MaxMoney
	}
	return p
}

// Plus adds two amounts, saturating like Times.
func (m Money) Plus(o Money) Money {
	sum := m + o
	switch {
	case o > 0 && sum < m:
		return MaxMoney
	case o < 0 && sum > m:
		return MinMoney
	}
	return sum
}

// String renders the amount with exactly two decimals ("3250.00").
func (m Money) String() string {
	v := uint64(m)
	sign := ""
	if m < 0 {
		sign = "-"
		v = uint64(-m)
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Display renders the amount for humans: "$65" for whole dollars, "$12.50" otherwise.
func (m Money) Display() string {
	if m%100 == 0 {
		return fmt.Sprintf("$%d", int64(m)/100)
	}
	return "$" + m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %s: %w", data, err)
	}
	*m = MoneyFromFloat(f)
	return nil
}
