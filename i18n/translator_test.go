package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	if msg := T("too_short", nil); msg != "too short" {
		t.Fatalf("expected english default, got %q", msg)
	}
	if msg := T("too_short", map[string]string{"min": "1"}); msg != "too short, minimum length 1" {
		t.Fatalf("expected min to be embedded, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg != "必須プロパティが不足しています" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// unsupported languages fall back to english
	SetLanguage("fr")
	if msg := T("unknown_key", nil); msg != "unknown key" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("nil should restore english, got %q", msg)
	}
}

func TestUnknownCodeEchoesCode(t *testing.T) {
	if msg := T("something_else", nil); msg != "something_else" {
		t.Fatalf("got %q", msg)
	}
}
