package domain

import "time"

// BitcoinUnit is a bitcoin denomination used for amounts and limits.
type BitcoinUnit string

const (
	BitcoinUnitSat  BitcoinUnit = "sat"
	BitcoinUnitBit  BitcoinUnit = "bit"
	BitcoinUnitMBtc BitcoinUnit = "mbtc"
	BitcoinUnitBtc  BitcoinUnit = "btc"
)

// MsatPerBtc is the number of millisatoshis in one bitcoin.
const MsatPerBtc = 100_000_000_000

// msatPerUnit returns the msat value of one whole unit.
func msatPerUnit(unit BitcoinUnit) float64 {
	switch unit {
	case BitcoinUnitSat:
		return 1_000
	case BitcoinUnitBit:
		return 100_000
	case BitcoinUnitMBtc:
		return 100_000_000
	case BitcoinUnitBtc:
		return MsatPerBtc
	default:
		return 1_000
	}
}

// ToMsat converts an amount expressed in the given bitcoin unit to msat.
func ToMsat(amount float64, unit BitcoinUnit) int64 {
	return int64(amount * msatPerUnit(unit))
}

// ConvertBitcoin converts an msat amount to the given bitcoin unit.
func ConvertBitcoin(msat int64, unit BitcoinUnit) float64 {
	return float64(msat) / msatPerUnit(unit)
}

// ConvertToFiat converts an msat amount to fiat using a BTC price rate.
func ConvertToFiat(msat int64, rate ExchangeRate) float64 {
	return float64(msat) / MsatPerBtc * rate.Price
}

// Currency identifies a denomination: either a bitcoin unit or an
// ISO-4217 fiat code. Exactly one of the two fields is set.
type Currency struct {
	BitcoinUnit BitcoinUnit `json:"bitcoin_unit,omitempty"`
	FiatCode    string      `json:"fiat_code,omitempty"`
}

func (c Currency) IsBitcoin() bool { return c.BitcoinUnit != "" }
func (c Currency) IsFiat() bool    { return c.FiatCode != "" }

// CurrencyAmount is an amount tagged with its denomination.
// Used for spending limits and for reporting the offending amount
// when a limit is exceeded.
type CurrencyAmount struct {
	Currency Currency `json:"currency"`
	Amount   float64  `json:"amount"`
}

// ExchangeRate is a BTC price quote in a single fiat currency.
type ExchangeRate struct {
	FiatCode  string    `json:"fiat_code"`
	Price     float64   `json:"price"` // fiat per BTC
	Timestamp time.Time `json:"timestamp"`
}

// RateFor returns the rate for the given fiat code, or nil if absent.
func RateFor(fiatCode string, rates []ExchangeRate) *ExchangeRate {
	for i := range rates {
		if rates[i].FiatCode == fiatCode {
			return &rates[i]
		}
	}
	return nil
}
