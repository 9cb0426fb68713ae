// Package main provides localization for the foldora CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",

		// Root command
		"File & directory manager for everyday housekeeping": "日常のファイル・ディレクトリ整理ツール",

		"foldora lists, creates, purges and prints files and directories, and replaces spaces with underscores in their names.": "foldoraはファイルやディレクトリの一覧・作成・削除・表示を行い、名前の空白をアンダースコアに置き換えます。",

		// Global flags
		"YAML configuration file":               "YAML設定ファイル",
		"Log level (debug, info, warn, error)":  "ログレベル (debug, info, warn, error)",
		"Suppress all log output":               "ログ出力をすべて抑制",
		"Colorize output (auto, always, never)": "出力の色付け (auto, always, never)",

		// Commands
		"List all files and directories of a given path": "指定したパスのファイルとディレクトリを一覧表示",
		"Show sizes and modification times":              "サイズと更新日時を表示",
		"Create directories and sub-directories":         "ディレクトリとサブディレクトリを作成",
		"Create files in the current (or a given) path":  "現在の(または指定した)パスにファイルを作成",

		"WARNING: existing files with the same name are truncated to zero length.": "警告: 同名の既存ファイルは空になります。",

		"Custom path where the file(s) will be saved": "ファイルの保存先パス",
		"Purge files and folders":                     "ファイルとフォルダを削除",
		"Write a Markdown summary to this file":       "Markdown形式のサマリーをこのファイルに出力",
		"Show the content of one or more files":       "ファイルの内容を表示",
		"Fill blanks in file and folder names":        "ファイル名とフォルダ名の空白を埋める",
		"Descend into subdirectories without asking":  "確認せずにサブディレクトリも処理",
		"normalize takes at most one path":            "normalizeに指定できるパスは1つまでです",

		// Errors
		"Error: %s":                    "エラー: %s",
		"Warning: .env not loaded: %s": "警告: .envを読み込めませんでした: %s",
	})
}
