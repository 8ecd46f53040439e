package lang

import "testing"

func TestNormalizeRegionCodes(t *testing.T) {
	cases := map[string]string{
		"en-us": "en_US",
		"en-gb": "en_GB",
		"pt-br": "pt_BR",
		"zh-cn": "zh_CN",
		"fr-ca": "fr_CA",
	}
	for code, want := range cases {
		got, ok := Normalize(code)
		if !ok {
			t.Errorf("Normalize(%q) not ok", code)
			continue
		}
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestNormalizeBareCodes(t *testing.T) {
	got, ok := Normalize("ja")
	if !ok || got != "ja_JP" {
		t.Errorf("Normalize(ja) = %q, %v, want ja_JP, true", got, ok)
	}

	// No canonical region exists for these.
	for _, code := range []string{"eo", "la", "jw", "su", "xx"} {
		if _, ok := Normalize(code); ok {
			t.Errorf("Normalize(%q) ok, want dropped", code)
		}
	}
}

func TestCompatCodesAreCanonical(t *testing.T) {
	for code := range compat {
		std, _ := Normalize(code)
		if len(std) < 4 {
			t.Errorf("compat[%q] = %q, not a ll_RR code", code, std)
		}
	}
}
