// Package lang normalizes speech-service language codes into the
// canonical ll_RR locale format used for voice matching.
package lang

import "strings"

// compat maps bare provider codes (no region part) to a canonical
// locale. Codes with no sensible canonical region (eo, la, jw, su)
// are deliberately absent; voices for them are dropped.
var compat = map[string]string{
	"af": "af_ZA",
	"ar": "ar_SA",
	"bn": "bn_BD",
	"bs": "bs_BA",
	"ca": "ca_ES",
	"cs": "cs_CZ",
	"cy": "cy_GB",
	"da": "da_DK",
	"de": "de_DE",
	"el": "el_GR",
	"et": "et_EE",
	"fi": "fi_FI",
	"gu": "gu_IN",
	"hi": "hi_IN",
	"hr": "hr_HR",
	"hu": "hu_HU",
	"hy": "hy_AM",
	"id": "id_ID",
	"is": "is_IS",
	"it": "it_IT",
	"ja": "ja_JP",
	"km": "km_KH",
	"kn": "kn_IN",
	"ko": "ko_KR",
	"lv": "lv_LV",
	"mk": "mk_MK",
	"ml": "ml_IN",
	"mr": "mr_IN",
	"my": "my_MM",
	"ne": "ne_NP",
	"nl": "nl_NL",
	"no": "nb_NO",
	"pl": "pl_PL",
	"ro": "ro_RO",
	"ru": "ru_RU",
	"si": "si_LK",
	"sk": "sk_SK",
	"sq": "sq_AL",
	"sr": "sr_RS",
	"sv": "sv_SE",
	"sw": "sw_KE",
	"ta": "ta_IN",
	"te": "te_IN",
	"th": "th_TH",
	"tl": "fil_PH",
	"tr": "tr_TR",
	"uk": "uk_UA",
	"ur": "ur_PK",
	"vi": "vi_VN",
}

// Normalize converts a provider language code into the canonical
// ll_RR form. Hyphenated codes like "en-us" become "en_US"; bare codes
// like "ja" are resolved through the compat table. The second return
// value is false when no canonical form exists.
func Normalize(code string) (string, bool) {
	if head, tail, found := strings.Cut(code, "-"); found {
		return head + "_" + strings.ToUpper(tail), true
	}
	std, ok := compat[code]
	return std, ok
}

// HasCompat reports whether a bare provider code has a canonical locale.
func HasCompat(code string) bool {
	_, ok := compat[code]
	return ok
}
