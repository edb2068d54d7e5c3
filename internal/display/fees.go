package display

import "github.com/shopspring/decimal"

// Marketplace fee approximation for the books category: a referral fee as a
// percentage of the sale price plus a flat closing fee. These mirror the
// backend's fee model only approximately.
var (
	referralFeeRate = decimal.NewFromFloat(0.15)
	closingFee      = decimal.NewFromFloat(1.80)
)

// FeeExplanation is a display-only breakdown of an estimated transaction,
// used to populate tooltip explanation text. It is a client-side
// approximation for user education and must never feed the canonical
// metric fields or any buy/skip decision path — those come from the
// backend, which owns the authoritative fee model.
type FeeExplanation struct {
	SellPrice    decimal.Decimal
	BuyPrice     decimal.Decimal
	EstimatedFee decimal.Decimal
	NetResult    decimal.Decimal

	// Pre-formatted strings for direct interpolation into tooltip text.
	SellPriceText string
	BuyPriceText  string
	FeeText       string
	NetText       string
	ROIText       string
}

// EstimateFees computes the approximate fee/profit breakdown for a
// sell/buy price pair:
//
//	fee = sell*0.15 + 1.80
//	net = sell - fee - buy
//	roi = net / buy (as a percentage, one decimal)
//
// Either input may be absent, in which case no breakdown is produced and
// the caller renders its generic "insufficient data" tooltip.
func EstimateFees(sellPrice, buyPrice *float64) *FeeExplanation {
	if sellPrice == nil || buyPrice == nil {
		return nil
	}

	sell := decimal.NewFromFloat(*sellPrice)
	buy := decimal.NewFromFloat(*buyPrice)

	fee := sell.Mul(referralFeeRate).Add(closingFee)
	net := sell.Sub(fee).Sub(buy)

	e := &FeeExplanation{
		SellPrice:    sell,
		BuyPrice:     buy,
		EstimatedFee: fee,
		NetResult:    net,

		SellPriceText: CurrencyValue(sell),
		BuyPriceText:  CurrencyValue(buy),
		FeeText:       signedCurrency(fee),
		NetText:       signedCurrency(net),
		ROIText:       "N/A",
	}

	if buy.Sign() > 0 {
		roi := net.Div(buy).Mul(decimal.NewFromInt(100))
		e.ROIText = roi.StringFixed(1) + "%"
	}

	return e
}

// signedCurrency renders an amount that may legitimately be negative
// (a losing net result), e.g. "-$1.23". Unlike Currency it never says
// "N/A": in an explanation a negative number is the whole point.
func signedCurrency(v decimal.Decimal) string {
	if v.Sign() < 0 {
		return "-$" + v.Neg().StringFixed(2)
	}
	return "$" + v.StringFixed(2)
}
