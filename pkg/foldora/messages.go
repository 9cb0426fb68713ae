package foldora

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Prompts
		"Proceed with deleting the files/folders ?": "ファイル/フォルダを削除しますか？",
		"Activate Sub Filling":                      "サブフォルダも処理しますか",
		"Aborted.":                                  "中止しました。",

		// Missing arguments
		"No path was given.":      "パスが指定されていません。",
		"No file path was given.": "ファイルパスが指定されていません。",

		// Results
		"-> (%d) directory(s) have been created.": "-> (%d) 個のディレクトリを作成しました。",
		"-> (%d) file(s) have been created.":      "-> (%d) 個のファイルを作成しました。",
		"-> (%d) directory(s) have been removed.": "-> (%d) 個のディレクトリを削除しました。",
		"-> (%d) file(s) have been removed.":      "-> (%d) 個のファイルを削除しました。",
		"-> (%d) error(s) occurred.":              "-> (%d) 件のエラーが発生しました。",
		"Cannot display %s: %s":                   "%s を表示できません: %s",

		// Error kinds
		"validation": "検証エラー",
		"permission": "権限エラー",
		"race":       "競合",
		"collision":  "名前の衝突",
		"no-input":   "入力なし",
		"other":      "その他",

		// Report
		"Operation Summary": "操作サマリー",
		"Generated":         "生成日時",
		"Targets":           "対象",
		"Settings":          "設定",
		"Item":              "項目",
		"Value":             "値",
		"Mode":              "モード",
		"Results":           "実行結果",
		"Directories":       "ディレクトリ",
		"Files":             "ファイル",
		"Size":              "サイズ",
		"Entries":           "エントリ",
		"Errors":            "エラー",
		"Path":              "パス",
		"Operation":         "操作",
		"Kind":              "種類",
		"Cause":             "原因",
		"Generated by":      "作成ツール",
	})
}
