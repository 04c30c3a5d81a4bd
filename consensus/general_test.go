package consensus

import "testing"

func TestIsBech32AddressPrefix(t *testing.T) {
	cases := []struct {
		prefix string
		params *Params
		want   bool
	}{
		{"lbr1", &MainNetParams, true},
		{"LBR1", &MainNetParams, true},
		{"lbr", &MainNetParams, false},
		{"tlb1", &MainNetParams, false},
		{"tlb1", &TestNetParams, true},
		{"dlb1", &SoloNetParams, true},
		{"dlb1", &TestNetParams, false},
	}

	for _, c := range cases {
		if got := IsBech32AddressPrefix(c.prefix, c.params); got != c.want {
			t.Errorf("IsBech32AddressPrefix(%s, %s) = %v, want %v", c.prefix, c.params.Name, got, c.want)
		}
	}
}

func TestInitActiveNetParams(t *testing.T) {
	defer func() { ActiveNetParams = MainNetParams }()

	if err := InitActiveNetParams("testnet"); err != nil {
		t.Fatal(err)
	}
	if ActiveNetParams.Bech32HRPAddress != "tlb" {
		t.Errorf("got hrp %s, want tlb", ActiveNetParams.Bech32HRPAddress)
	}

	if err := InitActiveNetParams("nowhere"); err == nil {
		t.Error("unknown chain id should fail")
	}
}

func TestNetParamsHRPLength(t *testing.T) {
	for name, params := range NetParams {
		if len(params.Bech32HRPAddress) != 3 {
			t.Errorf("%s: hrp %q is not three characters", name, params.Bech32HRPAddress)
		}
	}
}
