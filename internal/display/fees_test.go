package display

import "testing"

func TestEstimateFees(t *testing.T) {
	// sell 24.99, buy 8.50:
	//   fee = 24.99*0.15 + 1.80 = 5.5485
	//   net = 24.99 - 5.5485 - 8.50 = 10.9415
	//   roi = 10.9415 / 8.50 = 128.7%
	e := EstimateFees(floatPtr(24.99), floatPtr(8.50))
	if e == nil {
		t.Fatal("EstimateFees returned nil for valid inputs")
	}

	if got := e.EstimatedFee.String(); got != "5.5485" {
		t.Errorf("EstimatedFee = %s, want 5.5485", got)
	}
	if got := e.NetResult.String(); got != "10.9415" {
		t.Errorf("NetResult = %s, want 10.9415", got)
	}
	if e.FeeText != "$5.55" {
		t.Errorf("FeeText = %q, want $5.55", e.FeeText)
	}
	if e.NetText != "$10.94" {
		t.Errorf("NetText = %q, want $10.94", e.NetText)
	}
	if e.SellPriceText != "$24.99" {
		t.Errorf("SellPriceText = %q, want $24.99", e.SellPriceText)
	}
	if e.ROIText != "128.7%" {
		t.Errorf("ROIText = %q, want 128.7%%", e.ROIText)
	}
}

func TestEstimateFees_LosingTrade(t *testing.T) {
	// sell 5.00, buy 8.00: fee = 2.55, net = -5.55
	e := EstimateFees(floatPtr(5.00), floatPtr(8.00))
	if e == nil {
		t.Fatal("EstimateFees returned nil")
	}

	if e.NetText != "-$5.55" {
		t.Errorf("NetText = %q, want -$5.55", e.NetText)
	}
	if e.ROIText != "-69.4%" {
		t.Errorf("ROIText = %q, want -69.4%%", e.ROIText)
	}
}

func TestEstimateFees_AbsentInputs(t *testing.T) {
	if e := EstimateFees(nil, floatPtr(8.50)); e != nil {
		t.Errorf("missing sell price should yield nil, got %+v", e)
	}
	if e := EstimateFees(floatPtr(24.99), nil); e != nil {
		t.Errorf("missing buy price should yield nil, got %+v", e)
	}
}

func TestEstimateFees_FreeBuy(t *testing.T) {
	// Zero buy cost: breakdown is still produced but ROI is undefined.
	e := EstimateFees(floatPtr(10.00), floatPtr(0))
	if e == nil {
		t.Fatal("EstimateFees returned nil")
	}
	if e.ROIText != "N/A" {
		t.Errorf("ROIText = %q, want N/A for zero buy cost", e.ROIText)
	}
	if e.FeeText != "$3.30" {
		t.Errorf("FeeText = %q, want $3.30", e.FeeText)
	}
}
