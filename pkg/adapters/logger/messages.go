package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Lister
		"Listing %s":     "%s を一覧表示中",
		"%s: %d entries": "%s: %d 件",

		// Creators
		"Created directory %s":             "ディレクトリ %s を作成しました",
		"Created file %s":                  "ファイル %s を作成しました",
		"Created destination directory %s": "保存先ディレクトリ %s を作成しました",

		// Purger
		"Removed %s":                  "%s を削除しました",
		"Purging %d path(s)":          "%d 件のパスを削除中",
		"Not descending into link %s": "リンク %s の中には入りません",

		// Viewer
		"Reading %s": "%s を読み込み中",

		// Normalizer
		"Renamed %s -> %s":    "%s -> %s に名前を変更しました",
		"Normalizing %s (%s)": "%s を正規化中 (%s)",

		// Reports
		"Report written to %s": "レポートを %s に出力しました",

		// Failures
		"Failed to %s %s: %s":         "%[2]s の %[1]s に失敗しました: %[3]s",
		"Interrupted, stopping at %s": "中断されました。%s で停止します",
	})
}
