package currency

// DefaultConfig is the fallback for countries not in the table.
var DefaultConfig = Config{CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "en-US"}

// configs maps ISO 3166-1 alpha-2 country codes to display configuration.
// Roughly 150 countries; everything else falls back to DefaultConfig.
var configs = map[string]Config{
	// Americas
	"US": {CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "en-US"},
	"CA": {CurrencyCode: "CAD", Symbol: "CA$", DisplayName: "Canadian Dollar", Locale: "en-CA"},
	"MX": {CurrencyCode: "MXN", Symbol: "$", DisplayName: "Mexican Peso", Locale: "es-MX"},
	"CO": {CurrencyCode: "COP", Symbol: "$", DisplayName: "Colombian Peso", Locale: "es-CO"},
	"AR": {CurrencyCode: "ARS", Symbol: "$", DisplayName: "Argentine Peso", Locale: "es-AR"},
	"BR": {CurrencyCode: "BRL", Symbol: "R$", DisplayName: "Brazilian Real", Locale: "pt-BR"},
	"CL": {CurrencyCode: "CLP", Symbol: "$", DisplayName: "Chilean Peso", Locale: "es-CL"},
	"PE": {CurrencyCode: "PEN", Symbol: "S/", DisplayName: "Peruvian Sol", Locale: "es-PE"},
	"VE": {CurrencyCode: "VES", Symbol: "Bs.", DisplayName: "Venezuelan Bolívar", Locale: "es-VE"},
	"EC": {CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "es-EC"},
	"BO": {CurrencyCode: "BOB", Symbol: "Bs.", DisplayName: "Bolivian Boliviano", Locale: "es-BO"},
	"PY": {CurrencyCode: "PYG", Symbol: "₲", DisplayName: "Paraguayan Guaraní", Locale: "es-PY"},
	"UY": {CurrencyCode: "UYU", Symbol: "$U", DisplayName: "Uruguayan Peso", Locale: "es-UY"},
	"GT": {CurrencyCode: "GTQ", Symbol: "Q", DisplayName: "Guatemalan Quetzal", Locale: "es-GT"},
	"CR": {CurrencyCode: "CRC", Symbol: "₡", DisplayName: "Costa Rican Colón", Locale: "es-CR"},
	"PA": {CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "es-PA"},
	"DO": {CurrencyCode: "DOP", Symbol: "RD$", DisplayName: "Dominican Peso", Locale: "es-DO"},
	"HN": {CurrencyCode: "HNL", Symbol: "L", DisplayName: "Honduran Lempira", Locale: "es-HN"},
	"NI": {CurrencyCode: "NIO", Symbol: "C$", DisplayName: "Nicaraguan Córdoba", Locale: "es-NI"},
	"SV": {CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "es-SV"},
	"CU": {CurrencyCode: "CUP", Symbol: "$", DisplayName: "Cuban Peso", Locale: "es-CU"},
	"PR": {CurrencyCode: "USD", Symbol: "$", DisplayName: "US Dollar", Locale: "es-PR"},
	"JM": {CurrencyCode: "JMD", Symbol: "J$", DisplayName: "Jamaican Dollar", Locale: "en-JM"},
	"TT": {CurrencyCode: "TTD", Symbol: "TT$", DisplayName: "Trinidad Dollar", Locale: "en-TT"},
	"BS": {CurrencyCode: "BSD", Symbol: "B$", DisplayName: "Bahamian Dollar", Locale: "en-BS"},

	// Eurozone
	"DE": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "de-DE"},
	"FR": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "fr-FR"},
	"ES": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "es-ES"},
	"IT": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "it-IT"},
	"PT": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "pt-PT"},
	"NL": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "nl-NL"},
	"BE": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "fr-BE"},
	"AT": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "de-AT"},
	"IE": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "en-IE"},
	"FI": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "fi-FI"},
	"GR": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "el-GR"},
	"SK": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "sk-SK"},
	"SI": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "sl-SI"},
	"LT": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "lt-LT"},
	"LV": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "lv-LV"},
	"EE": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "et-EE"},
	"LU": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "fr-LU"},
	"CY": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "el-CY"},
	"MT": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "en-MT"},
	"HR": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "hr-HR"},
	"MC": {CurrencyCode: "EUR", Symbol: "€", DisplayName: "Euro", Locale: "fr-MC"},

	// Rest of Europe
	"GB": {CurrencyCode: "GBP", Symbol: "£", DisplayName: "British Pound", Locale: "en-GB"},
	"CH": {CurrencyCode: "CHF", Symbol: "CHF", DisplayName: "Swiss Franc", Locale: "de-CH"},
	"NO": {CurrencyCode: "NOK", Symbol: "kr", DisplayName: "Norwegian Krone", Locale: "nb-NO"},
	"SE": {CurrencyCode: "SEK", Symbol: "kr", DisplayName: "Swedish Krona", Locale: "sv-SE"},
	"DK": {CurrencyCode: "DKK", Symbol: "kr", DisplayName: "Danish Krone", Locale: "da-DK"},
	"IS": {CurrencyCode: "ISK", Symbol: "kr", DisplayName: "Icelandic Króna", Locale: "is-IS"},
	"PL": {CurrencyCode: "PLN", Symbol: "zł", DisplayName: "Polish Złoty", Locale: "pl-PL"},
	"CZ": {CurrencyCode: "CZK", Symbol: "Kč", DisplayName: "Czech Koruna", Locale: "cs-CZ"},
	"HU": {CurrencyCode: "HUF", Symbol: "Ft", DisplayName: "Hungarian Forint", Locale: "hu-HU"},
	"RO": {CurrencyCode: "RON", Symbol: "lei", DisplayName: "Romanian Leu", Locale: "ro-RO"},
	"BG": {CurrencyCode: "BGN", Symbol: "лв", DisplayName: "Bulgarian Lev", Locale: "bg-BG"},
	"RS": {CurrencyCode: "RSD", Symbol: "дин", DisplayName: "Serbian Dinar", Locale: "sr-RS"},
	"UA": {CurrencyCode: "UAH", Symbol: "₴", DisplayName: "Ukrainian Hryvnia", Locale: "uk-UA"},
	"RU": {CurrencyCode: "RUB", Symbol: "₽", DisplayName: "Russian Ruble", Locale: "ru-RU"},
	"BY": {CurrencyCode: "BYN", Symbol: "Br", DisplayName: "Belarusian Ruble", Locale: "be-BY"},
	"TR": {CurrencyCode: "TRY", Symbol: "₺", DisplayName: "Turkish Lira", Locale: "tr-TR"},
	"AL": {CurrencyCode: "ALL", Symbol: "L", DisplayName: "Albanian Lek", Locale: "sq-AL"},
	"MK": {CurrencyCode: "MKD", Symbol: "ден", DisplayName: "Macedonian Denar", Locale: "mk-MK"},
	"BA": {CurrencyCode: "BAM", Symbol: "KM", DisplayName: "Bosnian Mark", Locale: "bs-BA"},
	"MD": {CurrencyCode: "MDL", Symbol: "L", DisplayName: "Moldovan Leu", Locale: "ro-MD"},
	"GE": {CurrencyCode: "GEL", Symbol: "₾", DisplayName: "Georgian Lari", Locale: "ka-GE"},
	"AM": {CurrencyCode: "AMD", Symbol: "֏", DisplayName: "Armenian Dram", Locale: "hy-AM"},
	"AZ": {CurrencyCode: "AZN", Symbol: "₼", DisplayName: "Azerbaijani Manat", Locale: "az-AZ"},

	// Asia-Pacific
	"CN": {CurrencyCode: "CNY", Symbol: "¥", DisplayName: "Chinese Yuan", Locale: "zh-CN"},
	"JP": {CurrencyCode: "JPY", Symbol: "¥", DisplayName: "Japanese Yen", Locale: "ja-JP"},
	"KR": {CurrencyCode: "KRW", Symbol: "₩", DisplayName: "South Korean Won", Locale: "ko-KR"},
	"IN": {CurrencyCode: "INR", Symbol: "₹", DisplayName: "Indian Rupee", Locale: "hi-IN"},
	"ID": {CurrencyCode: "IDR", Symbol: "Rp", DisplayName: "Indonesian Rupiah", Locale: "id-ID"},
	"TH": {CurrencyCode: "THB", Symbol: "฿", DisplayName: "Thai Baht", Locale: "th-TH"},
	"VN": {CurrencyCode: "VND", Symbol: "₫", DisplayName: "Vietnamese Dong", Locale: "vi-VN"},
	"MY": {CurrencyCode: "MYR", Symbol: "RM", DisplayName: "Malaysian Ringgit", Locale: "ms-MY"},
	"SG": {CurrencyCode: "SGD", Symbol: "S$", DisplayName: "Singapore Dollar", Locale: "en-SG"},
	"PH": {CurrencyCode: "PHP", Symbol: "₱", DisplayName: "Philippine Peso", Locale: "en-PH"},
	"TW": {CurrencyCode: "TWD", Symbol: "NT$", DisplayName: "New Taiwan Dollar", Locale: "zh-TW"},
	"HK": {CurrencyCode: "HKD", Symbol: "HK$", DisplayName: "Hong Kong Dollar", Locale: "zh-HK"},
	"MO": {CurrencyCode: "MOP", Symbol: "MOP$", DisplayName: "Macanese Pataca", Locale: "zh-MO"},
	"AU": {CurrencyCode: "AUD", Symbol: "A$", DisplayName: "Australian Dollar", Locale: "en-AU"},
	"NZ": {CurrencyCode: "NZD", Symbol: "NZ$", DisplayName: "New Zealand Dollar", Locale: "en-NZ"},
	"PK": {CurrencyCode: "PKR", Symbol: "₨", DisplayName: "Pakistani Rupee", Locale: "ur-PK"},
	"BD": {CurrencyCode: "BDT", Symbol: "৳", DisplayName: "Bangladeshi Taka", Locale: "bn-BD"},
	"LK": {CurrencyCode: "LKR", Symbol: "Rs", DisplayName: "Sri Lankan Rupee", Locale: "si-LK"},
	"NP": {CurrencyCode: "NPR", Symbol: "Rs", DisplayName: "Nepalese Rupee", Locale: "ne-NP"},
	"MM": {CurrencyCode: "MMK", Symbol: "K", DisplayName: "Myanmar Kyat", Locale: "my-MM"},
	"KH": {CurrencyCode: "KHR", Symbol: "៛", DisplayName: "Cambodian Riel", Locale: "km-KH"},
	"LA": {CurrencyCode: "LAK", Symbol: "₭", DisplayName: "Lao Kip", Locale: "lo-LA"},
	"MN": {CurrencyCode: "MNT", Symbol: "₮", DisplayName: "Mongolian Tögrög", Locale: "mn-MN"},
	"KZ": {CurrencyCode: "KZT", Symbol: "₸", DisplayName: "Kazakhstani Tenge", Locale: "kk-KZ"},
	"UZ": {CurrencyCode: "UZS", Symbol: "сум", DisplayName: "Uzbekistani Som", Locale: "uz-UZ"},
	"KG": {CurrencyCode: "KGS", Symbol: "с", DisplayName: "Kyrgyzstani Som", Locale: "ky-KG"},
	"TM": {CurrencyCode: "TMT", Symbol: "m", DisplayName: "Turkmenistani Manat", Locale: "tk-TM"},
	"FJ": {CurrencyCode: "FJD", Symbol: "FJ$", DisplayName: "Fijian Dollar", Locale: "en-FJ"},
	"PG": {CurrencyCode: "PGK", Symbol: "K", DisplayName: "Papua New Guinean Kina", Locale: "en-PG"},

	// Middle East
	"AE": {CurrencyCode: "AED", Symbol: "د.إ", DisplayName: "UAE Dirham", Locale: "ar-AE"},
	"SA": {CurrencyCode: "SAR", Symbol: "﷼", DisplayName: "Saudi Riyal", Locale: "ar-SA"},
	"QA": {CurrencyCode: "QAR", Symbol: "﷼", DisplayName: "Qatari Riyal", Locale: "ar-QA"},
	"KW": {CurrencyCode: "KWD", Symbol: "د.ك", DisplayName: "Kuwaiti Dinar", Locale: "ar-KW"},
	"BH": {CurrencyCode: "BHD", Symbol: ".د.ب", DisplayName: "Bahraini Dinar", Locale: "ar-BH"},
	"OM": {CurrencyCode: "OMR", Symbol: "﷼", DisplayName: "Omani Rial", Locale: "ar-OM"},
	"IL": {CurrencyCode: "ILS", Symbol: "₪", DisplayName: "Israeli New Shekel", Locale: "he-IL"},
	"JO": {CurrencyCode: "JOD", Symbol: "د.ا", DisplayName: "Jordanian Dinar", Locale: "ar-JO"},
	"LB": {CurrencyCode: "LBP", Symbol: "ل.ل", DisplayName: "Lebanese Pound", Locale: "ar-LB"},
	"IQ": {CurrencyCode: "IQD", Symbol: "ع.د", DisplayName: "Iraqi Dinar", Locale: "ar-IQ"},
	"IR": {CurrencyCode: "IRR", Symbol: "﷼", DisplayName: "Iranian Rial", Locale: "fa-IR"},
	"SY": {CurrencyCode: "SYP", Symbol: "£S", DisplayName: "Syrian Pound", Locale: "ar-SY"},
	"YE": {CurrencyCode: "YER", Symbol: "﷼", DisplayName: "Yemeni Rial", Locale: "ar-YE"},
	"AF": {CurrencyCode: "AFN", Symbol: "؋", DisplayName: "Afghan Afghani", Locale: "fa-AF"},

	// Africa
	"ZA": {CurrencyCode: "ZAR", Symbol: "R", DisplayName: "South African Rand", Locale: "en-ZA"},
	"NG": {CurrencyCode: "NGN", Symbol: "₦", DisplayName: "Nigerian Naira", Locale: "en-NG"},
	"EG": {CurrencyCode: "EGP", Symbol: "E£", DisplayName: "Egyptian Pound", Locale: "ar-EG"},
	"KE": {CurrencyCode: "KES", Symbol: "KSh", DisplayName: "Kenyan Shilling", Locale: "en-KE"},
	"GH": {CurrencyCode: "GHS", Symbol: "₵", DisplayName: "Ghanaian Cedi", Locale: "en-GH"},
	"MA": {CurrencyCode: "MAD", Symbol: "د.م.", DisplayName: "Moroccan Dirham", Locale: "ar-MA"},
	"DZ": {CurrencyCode: "DZD", Symbol: "د.ج", DisplayName: "Algerian Dinar", Locale: "ar-DZ"},
	"TN": {CurrencyCode: "TND", Symbol: "د.ت", DisplayName: "Tunisian Dinar", Locale: "ar-TN"},
	"LY": {CurrencyCode: "LYD", Symbol: "ل.د", DisplayName: "Libyan Dinar", Locale: "ar-LY"},
	"ET": {CurrencyCode: "ETB", Symbol: "Br", DisplayName: "Ethiopian Birr", Locale: "am-ET"},
	"TZ": {CurrencyCode: "TZS", Symbol: "TSh", DisplayName: "Tanzanian Shilling", Locale: "sw-TZ"},
	"UG": {CurrencyCode: "UGX", Symbol: "USh", DisplayName: "Ugandan Shilling", Locale: "en-UG"},
	"RW": {CurrencyCode: "RWF", Symbol: "FRw", DisplayName: "Rwandan Franc", Locale: "rw-RW"},
	"ZM": {CurrencyCode: "ZMW", Symbol: "ZK", DisplayName: "Zambian Kwacha", Locale: "en-ZM"},
	"ZW": {CurrencyCode: "ZWL", Symbol: "Z$", DisplayName: "Zimbabwean Dollar", Locale: "en-ZW"},
	"BW": {CurrencyCode: "BWP", Symbol: "P", DisplayName: "Botswana Pula", Locale: "en-BW"},
	"MZ": {CurrencyCode: "MZN", Symbol: "MT", DisplayName: "Mozambican Metical", Locale: "pt-MZ"},
	"AO": {CurrencyCode: "AOA", Symbol: "Kz", DisplayName: "Angolan Kwanza", Locale: "pt-AO"},
	"SN": {CurrencyCode: "XOF", Symbol: "CFA", DisplayName: "West African CFA Franc", Locale: "fr-SN"},
	"CI": {CurrencyCode: "XOF", Symbol: "CFA", DisplayName: "West African CFA Franc", Locale: "fr-CI"},
	"CM": {CurrencyCode: "XAF", Symbol: "FCFA", DisplayName: "Central African CFA Franc", Locale: "fr-CM"},
	"CD": {CurrencyCode: "CDF", Symbol: "FC", DisplayName: "Congolese Franc", Locale: "fr-CD"},
	"MU": {CurrencyCode: "MUR", Symbol: "Rs", DisplayName: "Mauritian Rupee", Locale: "en-MU"},
	"NA": {CurrencyCode: "NAD", Symbol: "N$", DisplayName: "Namibian Dollar", Locale: "en-NA"},
	"MW": {CurrencyCode: "MWK", Symbol: "MK", DisplayName: "Malawian Kwacha", Locale: "en-MW"},
	"SD": {CurrencyCode: "SDG", Symbol: "ج.س", DisplayName: "Sudanese Pound", Locale: "ar-SD"},
}

// ConfigFor returns the currency configuration for a country code.
// Unknown codes get DefaultConfig.
func ConfigFor(country string) Config {
	if cfg, ok := configs[country]; ok {
		return cfg
	}
	return DefaultConfig
}
