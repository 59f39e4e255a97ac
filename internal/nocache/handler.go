package nocache

import (
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Handler はキャッシュを無効化して静的ファイルを配信するハンドラ
type Handler struct {
	root  http.FileSystem
	files http.Handler

	// Now はX-Timestampに使う現在時刻を返す
	Now func() time.Time
}

// New はrootを配信する新しいHandlerを作成する
func New(root http.FileSystem) *Handler {
	return &Handler{
		root:  root,
		files: http.FileServer(root),
		Now:   time.Now,
	}
}

// ServeHTTP はリクエストをファイルサーバーに委譲する
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := &responseWriter{
		ResponseWriter: w,
		path:           r.URL.Path,
		now:            h.Now,
	}

	// ファイル配信は GET と HEAD のみ
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(rw, fmt.Sprintf("Unsupported method ('%s')", r.Method), http.StatusNotImplemented)
		return
	}

	if ContentType(r.URL.Path) == "" {
		h.sniff(rw, r.URL.Path)
	}

	h.files.ServeHTTP(rw, r)
}

// sniff は拡張子から型が決まらないファイルの内容を見てContent-Typeを設定する
// 設定済みのContent-Typeはファイルサーバーがそのまま使う
func (h *Handler) sniff(w http.ResponseWriter, upath string) {
	if strings.HasSuffix(upath, "/") || mime.TypeByExtension(path.Ext(upath)) != "" {
		return
	}

	f, err := h.root.Open(path.Clean("/" + upath))
	if err != nil {
		// エラー応答はファイルサーバーに任せる
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return
	}
	w.Header().Set("Content-Type", mtype.String())
}
