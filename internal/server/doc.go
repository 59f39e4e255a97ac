// Package server は、開発用の静的ファイルサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// アクセスログの出力を担当します。ファイルの配信そのものは
// nocacheパッケージのハンドラに委譲します。
//
// 責務:
//   - 配信ディレクトリの存在確認
//   - リッスンソケットの確保と起動メッセージの出力
//   - リクエストのルーティング
//   - シグナル受信時のグレースフルシャットダウン
//
// 仕様:
//   - ルーティングはgin-gonic/ginを使用
//   - 同時に処理する接続は1つだけ (Keep-Aliveは無効)
//   - ログはrs/zerologを使用
package server
