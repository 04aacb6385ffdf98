package i18n

// Translator retrieves localized messages for decode error codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "actual").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が一致しません"
		case "missing_key":
			return "必須キーが不足しています"
		case "missing_index":
			return "インデックスが範囲外です"
		case "wrong_container":
			return "この値の中は辿れません"
		case "custom":
			return "デコードに失敗しました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			return "unexpected type"
		case "missing_key":
			return "required key missing"
		case "missing_index":
			return "index out of range"
		case "wrong_container":
			return "cannot traverse into this value"
		case "custom":
			return "decode failed"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
