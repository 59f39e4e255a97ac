// Package nocache は、キャッシュを無効化した静的ファイル配信を提供します。
//
// このパッケージは、標準ライブラリのファイルサーバーをラップし、
// レスポンスヘッダーの確定時とContent-Typeの決定時の2か所だけに
// 処理を差し込みます。パスの解決やディレクトリ一覧、エラー応答は
// ファイルサーバーの挙動をそのまま使います。
//
// 責務:
//   - すべてのレスポンスにキャッシュ無効化ヘッダーを付与する
//   - .js / .css のContent-Typeを環境に依存しない固定値にする
//   - 拡張子から型が決まらないファイルの内容判定
//
// 仕様:
//   - Cache-Control: no-cache, no-store, must-revalidate
//   - Pragma: no-cache
//   - Expires: 0
//   - X-Timestamp: ヘッダー送信時点のUNIX時刻 (秒)
//   - GET / HEAD 以外のメソッドは 501 を返す
package nocache
