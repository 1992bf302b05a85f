package i18n

import "strings"

// Message codes used across erracc and its rules.
const (
	CodeAccumulatedHeader = "accumulated_header"
	CodePathInvalidChar   = "path_invalid_char"
	CodePathIncomplete    = "path_incomplete_array"
	CodePathInvalidIndex  = "path_invalid_index"
	CodePathEmpty         = "path_empty"

	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeUnreachable   = "dependency_unavailable"
	CodeDuplicateKey  = "duplicate_key"
)

// Translator retrieves localized messages for message codes.
// data provides optional values substituted for {key} placeholders in the
// message (for example, "min" or "input").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		CodeAccumulatedHeader: "Accumulated errors:",
		CodePathInvalidChar:   "failed to parse '{input}' as it contains at least one invalid character: '.', '[', ']'",
		CodePathIncomplete:    "array segment '{input}' does not contain proper brackets",
		CodePathInvalidIndex:  "invalid index in '{input}'",
		CodePathEmpty:         "empty field name or path",
		CodeRequired:          "required field missing",
		CodeInvalidType:       "invalid type, expected {expected}",
		CodeTooSmall:          "must be at least {min}",
		CodeTooBig:            "must be at most {max}",
		CodeTooShort:          "must be at least {min} characters long",
		CodeTooLong:           "must be at most {max} characters long",
		CodeInvalidEnum:       "must be one of {allowed}",
		CodeInvalidFormat:     "invalid {format}",
		CodeUnreachable:       "dependency unavailable",
		CodeDuplicateKey:      "key '{key}' is duplicated",
	},
	"ja": {
		CodeAccumulatedHeader: "累積エラー:",
		CodePathInvalidChar:   "'{input}' に不正な文字が含まれています: '.', '[', ']'",
		CodePathIncomplete:    "配列セグメント '{input}' の括弧が不正です",
		CodePathInvalidIndex:  "'{input}' のインデックスが不正です",
		CodePathEmpty:         "フィールド名またはパスが空です",
		CodeRequired:          "必須フィールドが不足しています",
		CodeInvalidType:       "型が不正です ({expected} が必要です)",
		CodeTooSmall:          "{min} 以上である必要があります",
		CodeTooBig:            "{max} 以下である必要があります",
		CodeTooShort:          "{min} 文字以上である必要があります",
		CodeTooLong:           "{max} 文字以下である必要があります",
		CodeInvalidEnum:       "{allowed} のいずれかである必要があります",
		CodeInvalidFormat:     "{format} の形式が不正です",
		CodeUnreachable:       "依存先サービスが利用できません",
		CodeDuplicateKey:      "キー '{key}' が重複しています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
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
