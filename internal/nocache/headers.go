package nocache

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// キャッシュ無効化ヘッダーの値
const (
	CacheControl = "no-cache, no-store, must-revalidate"
	Pragma       = "no-cache"
	Expires      = "0"

	TimestampHeader = "X-Timestamp"
)

// 固定のContent-Type
const (
	JavaScriptType = "application/javascript; charset=utf-8"
	CSSType        = "text/css; charset=utf-8"
)

// ContentType はリクエストパスの末尾から固定のContent-Typeを返す
// 対象外のパスでは空文字を返し、既定の推定に任せる
func ContentType(p string) string {
	switch {
	case strings.HasSuffix(p, ".js"):
		return JavaScriptType
	case strings.HasSuffix(p, ".css"):
		return CSSType
	default:
		return ""
	}
}

// SetHeaders はキャッシュ無効化ヘッダーを設定する
func SetHeaders(h http.Header, now time.Time) {
	h.Set("Cache-Control", CacheControl)
	h.Set("Pragma", Pragma)
	h.Set("Expires", Expires)
	h.Set(TimestampHeader, strconv.FormatInt(now.Unix(), 10))
}

// responseWriter はヘッダー送信の直前に処理を差し込む
type responseWriter struct {
	http.ResponseWriter

	path        string
	now         func() time.Time
	wroteHeader bool
}

// WriteHeader はヘッダーを確定させてからステータスを書き込む
func (w *responseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.finalize(code)
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write は未送信ならステータス200でヘッダーを確定させる
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap はhttp.ResponseController用に元のResponseWriterを返す
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *responseWriter) finalize(code int) {
	h := w.Header()
	SetHeaders(h, w.now())

	// 型の上書きはファイル本体を返すときだけ
	if code != http.StatusOK && code != http.StatusPartialContent {
		return
	}
	ctype := ContentType(w.path)
	if ctype == "" || strings.HasPrefix(h.Get("Content-Type"), "multipart/") {
		return
	}
	h.Set("Content-Type", ctype)
}
