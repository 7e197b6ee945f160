package calc

import "testing"

func TestValidateAcceptsConstant(t *testing.T) {
	cases := []string{"0", "5", "-5", "123456789"}
	for _, c := range cases {
		if !Validate(c) {
			t.Errorf("Validate(%q) = false, want true", c)
		}
	}
}

func TestValidateRejectsMalformedConstant(t *testing.T) {
	cases := []string{"", "+5", "5.0", "--5", "-", "5-"}
	for _, c := range cases {
		if Validate(c) {
			t.Errorf("Validate(%q) = true, want false", c)
		}
	}
}

func TestValidateAcceptsComposite(t *testing.T) {
	cases := []string{
		"((1,1),2)",
		"(1,0)+(2,1)",
		"((1,0)+(2,1),3)",
		"(-1,0)",
	}
	for _, c := range cases {
		if !Validate(c) {
			t.Errorf("Validate(%q) = false, want true", c)
		}
	}
}

func TestValidateRejectsBadExponent(t *testing.T) {
	cases := []string{"(1,-1)", "(1,)", "(1,abc)", "(1,2147483648)"}
	for _, c := range cases {
		if Validate(c) {
			t.Errorf("Validate(%q) = true, want false", c)
		}
	}
}

func TestValidateRejectsUnbalancedBrackets(t *testing.T) {
	cases := []string{"((1,1)", "(1,1))", "(1,1)+", "+(1,1)"}
	for _, c := range cases {
		if Validate(c) {
			t.Errorf("Validate(%q) = true, want false", c)
		}
	}
}

func TestLoadRoundTripsThroughString(t *testing.T) {
	cases := []string{"0", "5", "-3", "(1,0)+(2,1)", "((1,1),2)"}
	for _, c := range cases {
		p := Load(c)
		if !Validate(p.String()) {
			t.Errorf("Load(%q).String() = %q is not itself valid", c, p.String())
		}
	}
}

func TestLoadCollapsesConstantComposite(t *testing.T) {
	p := Load("(5,0)")
	if !p.IsCoeff() {
		t.Fatalf("Load(%q) should collapse to a constant, got %q", "(5,0)", p.String())
	}
	v, _ := p.Coeff()
	if v != 5 {
		t.Fatalf("Load(%q) coeff = %d, want 5", "(5,0)", v)
	}
}

func TestSplitTopLevelRespectsDepth(t *testing.T) {
	parts, ok := splitTopLevel("(1,0)+(2,1)", '+')
	if !ok || len(parts) != 2 {
		t.Fatalf("splitTopLevel = %v, %v", parts, ok)
	}
	if parts[0] != "(1,0)" || parts[1] != "(2,1)" {
		t.Fatalf("splitTopLevel parts = %v", parts)
	}
}

func TestSplitFirstTopLevelComma(t *testing.T) {
	before, after, ok := splitFirstTopLevelComma("(1,0)+(2,1),3")
	if !ok {
		t.Fatalf("splitFirstTopLevelComma failed to find a split")
	}
	if before != "(1,0)+(2,1)" || after != "3" {
		t.Fatalf("got before=%q after=%q", before, after)
	}
}
