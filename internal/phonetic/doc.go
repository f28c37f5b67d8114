// Package phonetic converts between Mandarin phonetic notations: the
// tone-numbered pinyin carried by CC-CEDICT entries, tone-marked pinyin as
// returned by the transliteration service, and zhuyin (bopomofo). It also
// derives the display reading for word tokens and whole sentences.
package phonetic
