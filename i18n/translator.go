package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if e := data["expected"]; e != "" {
				return "型が不正です (期待: " + e + ")"
			}
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "too_short":
			if m := data["min"]; m != "" {
				return "短すぎます (最小 " + m + ")"
			}
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "too_small":
			return "要素数が少なすぎます"
		case "too_big":
			return "要素数が多すぎます"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if e := data["expected"]; e != "" {
				return "invalid type, expected " + e
			}
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "too_short":
			if m := data["min"]; m != "" {
				return "too short, minimum length " + m
			}
			return "too short"
		case "too_long":
			if m := data["max"]; m != "" {
				return "too long, maximum length " + m
			}
			return "too long"
		case "too_small":
			return "too few items"
		case "too_big":
			return "too many items"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Value

func init() { current.Store(holder{dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(holder{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(holder{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().(holder).tr.Message(code, data)
}
